package model

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(255);not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Employee <-> Project through assignments
	Assignments []Assignment `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"assignments"`
}

func (Employee) TableName() string { return "employees" }
