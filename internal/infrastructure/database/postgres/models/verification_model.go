package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationLogModel represents the append-only verification ledger.
type VerificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	AssetID      uuid.UUID `gorm:"type:uuid;not null;index"`
	VerifiedByID uuid.UUID `gorm:"type:uuid;not null"`
	VerifiedAt   time.Time `gorm:"not null"`
}

func (VerificationLogModel) TableName() string {
	return "verification_logs"
}
