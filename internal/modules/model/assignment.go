package model

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is one employee<->project link. Uniqueness is the pair itself.
type Assignment struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"employee_id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"employee,omitempty"`
	Project  *Project  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (Assignment) TableName() string { return "assignments" }
