package repo

import (
	"context"

	"github.com/staffdesk-io/staffdesk/internal/modules/model"
	"gorm.io/gorm"
)

type AuditRepo interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepo(db *gorm.DB) AuditRepo {
	return &auditRepo{db: db}
}

func (r *auditRepo) Create(ctx context.Context, entry *model.AuditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
