package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffdesk-io/staffdesk/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	DeleteWithAssignments(ctx context.Context, id uuid.UUID) error
	GetWithEmployees(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListWithEmployees(ctx context.Context) ([]model.Project, error)
	SearchWithEmployees(ctx context.Context, term string) ([]model.Project, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *projectRepo) DeleteWithAssignments(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{ID: id}).Error
	})
}

func (r *projectRepo) GetWithEmployees(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p := model.Project{}
	err := r.db.WithContext(ctx).
		Preload("Assignments.Employee").
		Where(&model.Project{ID: id}).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) ListWithEmployees(ctx context.Context) ([]model.Project, error) {
	var items []model.Project
	return items, r.db.WithContext(ctx).
		Preload("Assignments.Employee").
		Order("created_at ASC, id ASC").
		Find(&items).Error
}

func (r *projectRepo) SearchWithEmployees(ctx context.Context, term string) ([]model.Project, error) {
	var items []model.Project
	return items, r.db.WithContext(ctx).
		Preload("Assignments.Employee").
		Where("name ILIKE ?", "%"+term+"%").
		Order("created_at ASC, id ASC").
		Find(&items).Error
}
