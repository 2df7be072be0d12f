package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainVerification "asset-tracker/internal/domain/verification"
	"asset-tracker/internal/infrastructure/database/postgres/models"
)

// VerificationRepository implements verification.Repository on GORM.
type VerificationRepository struct {
	db *DB
}

// NewVerificationRepository creates a new verification ledger repository
func NewVerificationRepository(db *DB) domainVerification.Repository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(ctx context.Context, log *domainVerification.Log) error {
	log.ID = uuid.New()

	dbModel := &models.VerificationLogModel{
		ID:           log.ID,
		AssetID:      log.AssetID,
		VerifiedByID: log.VerifiedByID,
		VerifiedAt:   log.VerifiedAt,
	}

	if err := r.db.session(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to append verification log: %w", err)
	}

	return nil
}
