package models

import (
	"time"

	"github.com/google/uuid"
)

// QrCodeModel represents the database model for the QR code registry.
// The unique index on code is load-bearing: concurrent generation races
// surface as duplicate-key errors instead of duplicate rows.
type QrCodeModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	Code           string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	IsAssigned     bool       `gorm:"not null;default:false"`
	AssetID        *uuid.UUID `gorm:"type:uuid;index"`
	RegisteredByID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"not null"`
}

func (QrCodeModel) TableName() string {
	return "qr_codes"
}
