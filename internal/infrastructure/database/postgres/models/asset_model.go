package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetModel represents the database model for assets.
type AssetModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Category       string     `gorm:"type:varchar(50);not null"`
	SerialNumber   *string    `gorm:"type:varchar(255)"`
	Location       *string    `gorm:"type:varchar(255)"`
	Status         string     `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	IsDeleted      bool       `gorm:"not null;default:false"`
	IsQrGenerated  bool       `gorm:"not null;default:false"`
	LastVerifiedAt *time.Time `gorm:"type:timestamp"`
	RegisteredByID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

func (AssetModel) TableName() string {
	return "assets"
}
