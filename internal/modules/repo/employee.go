package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffdesk-io/staffdesk/internal/modules/model"
	"gorm.io/gorm"
)

type EmployeeRepo interface {
	Create(ctx context.Context, e *model.Employee) error
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	DeleteWithAssignments(ctx context.Context, id uuid.UUID) error
	GetWithProjects(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	ListWithProjects(ctx context.Context) ([]model.Employee, error)
	SearchWithProjects(ctx context.Context, term string) ([]model.Employee, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepo(db *gorm.DB) EmployeeRepo {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *employeeRepo) DeleteWithAssignments(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Join rows go first, then the base row.
		if err := tx.Where("employee_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Employee{ID: id}).Error
	})
}

func (r *employeeRepo) GetWithProjects(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	e := model.Employee{}
	err := r.db.WithContext(ctx).
		Preload("Assignments.Project").
		Where(&model.Employee{ID: id}).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) ListWithProjects(ctx context.Context) ([]model.Employee, error) {
	var items []model.Employee
	return items, r.db.WithContext(ctx).
		Preload("Assignments.Project").
		Order("created_at ASC, id ASC").
		Find(&items).Error
}

func (r *employeeRepo) SearchWithProjects(ctx context.Context, term string) ([]model.Employee, error) {
	var items []model.Employee
	return items, r.db.WithContext(ctx).
		Preload("Assignments.Project").
		Where("name ILIKE ?", "%"+term+"%").
		Order("created_at ASC, id ASC").
		Find(&items).Error
}
