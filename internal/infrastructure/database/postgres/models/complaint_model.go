package models

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintModel represents the database model for reported issues.
type ComplaintModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	AssetID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReportedByID uuid.UUID  `gorm:"type:uuid;not null"`
	Description  string     `gorm:"type:text;not null"`
	ImageURL     *string    `gorm:"type:varchar(512)"`
	Status       string     `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt    time.Time  `gorm:"not null"`
	ResolvedAt   *time.Time `gorm:"type:timestamp"`
}

func (ComplaintModel) TableName() string {
	return "complaints"
}
