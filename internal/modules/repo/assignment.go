package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffdesk-io/staffdesk/internal/modules/model"
	"gorm.io/gorm"
)

type AssignmentRepo interface {
	ReplaceForEmployee(ctx context.Context, employeeID uuid.UUID, projectIDs []uuid.UUID) error
	ReplaceForProject(ctx context.Context, projectID uuid.UUID, employeeIDs []uuid.UUID) error
	DeletePairsForEmployee(ctx context.Context, employeeID uuid.UUID, projectIDs []uuid.UUID) error
	DeletePairsForProject(ctx context.Context, projectID uuid.UUID, employeeIDs []uuid.UUID) error
}

type assignmentRepo struct{ db *gorm.DB }

func NewAssignmentRepo(db *gorm.DB) AssignmentRepo {
	return &assignmentRepo{db: db}
}

// ReplaceForEmployee swaps the full assignment set of one employee. Delete and
// insert run in one transaction so a failed insert cannot leave the set
// half-cleared.
func (r *assignmentRepo) ReplaceForEmployee(ctx context.Context, employeeID uuid.UUID, projectIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		if len(projectIDs) == 0 {
			return nil
		}
		rows := make([]model.Assignment, 0, len(projectIDs))
		for _, pid := range projectIDs {
			rows = append(rows, model.Assignment{EmployeeID: employeeID, ProjectID: pid})
		}
		return tx.Create(&rows).Error
	})
}

func (r *assignmentRepo) ReplaceForProject(ctx context.Context, projectID uuid.UUID, employeeIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		if len(employeeIDs) == 0 {
			return nil
		}
		rows := make([]model.Assignment, 0, len(employeeIDs))
		for _, eid := range employeeIDs {
			rows = append(rows, model.Assignment{EmployeeID: eid, ProjectID: projectID})
		}
		return tx.Create(&rows).Error
	})
}

func (r *assignmentRepo) DeletePairsForEmployee(ctx context.Context, employeeID uuid.UUID, projectIDs []uuid.UUID) error {
	if len(projectIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("employee_id = ? AND project_id IN ?", employeeID, projectIDs).
		Delete(&model.Assignment{}).Error
}

func (r *assignmentRepo) DeletePairsForProject(ctx context.Context, projectID uuid.UUID, employeeIDs []uuid.UUID) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("project_id = ? AND employee_id IN ?", projectID, employeeIDs).
		Delete(&model.Assignment{}).Error
}
