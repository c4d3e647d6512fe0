package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(255);not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project <-> Employee through assignments
	Assignments []Assignment `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"assignments"`
}

func (Project) TableName() string { return "projects" }
