package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditEntry is a persisted mutation record, written by the audit worker from
// queued events rather than inline with the mutation itself.
type AuditEntry struct {
	ID      uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Table   string            `gorm:"column:table_name;type:varchar(64);not null;index" json:"table"`
	Action  string            `gorm:"type:varchar(16);not null" json:"action"`
	RowID   uuid.UUID         `gorm:"type:uuid;index" json:"row_id"`
	Payload datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"payload"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditEntry) TableName() string { return "audit_entries" }
