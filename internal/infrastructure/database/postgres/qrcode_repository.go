package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainQr "asset-tracker/internal/domain/qrcode"
	"asset-tracker/internal/infrastructure/database/postgres/models"
)

// QrCodeRepository implements qrcode.Repository on GORM.
type QrCodeRepository struct {
	db *DB
}

// NewQrCodeRepository creates a new QR code repository
func NewQrCodeRepository(db *DB) domainQr.Repository {
	return &QrCodeRepository{db: db}
}

func (r *QrCodeRepository) Create(ctx context.Context, q *domainQr.QrCode) error {
	q.ID = uuid.New()
	q.CreatedAt = time.Now()

	dbModel := toQrCodeModel(q)
	if err := r.db.session(ctx).Create(dbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainQr.ErrCodeAlreadyExists
		}
		return fmt.Errorf("failed to create qr code: %w", err)
	}

	return nil
}

func (r *QrCodeRepository) CreateBatch(ctx context.Context, codes []string, registeredBy *uuid.UUID) (int64, error) {
	if len(codes) == 0 {
		return 0, nil
	}

	now := time.Now()
	dbModels := make([]models.QrCodeModel, len(codes))
	for i, code := range codes {
		dbModels[i] = models.QrCodeModel{
			ID:             uuid.New(),
			Code:           code,
			IsAssigned:     false,
			RegisteredByID: registeredBy,
			CreatedAt:      now,
		}
	}

	// Rows whose code raced into existence are skipped, not failed.
	result := r.db.session(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(&dbModels)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert qr codes: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *QrCodeRepository) GetByCode(ctx context.Context, code string) (*domainQr.QrCode, error) {
	var dbModel models.QrCodeModel
	err := r.db.session(ctx).
		Where("code = ?", code).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainQr.ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get qr code: %w", err)
	}

	return toQrCodeEntity(&dbModel), nil
}

func (r *QrCodeRepository) FindExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	var existing []string
	err := r.db.session(ctx).
		Model(&models.QrCodeModel{}).
		Where("code IN ?", codes).
		Pluck("code", &existing).Error

	if err != nil {
		return nil, fmt.Errorf("failed to check existing qr codes: %w", err)
	}

	return existing, nil
}

func (r *QrCodeRepository) Exists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.session(ctx).
		Model(&models.QrCodeModel{}).
		Where("code = ?", code).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check qr code existence: %w", err)
	}

	return count > 0, nil
}

func (r *QrCodeRepository) Assign(ctx context.Context, qrID, assetID uuid.UUID, registeredBy *uuid.UUID) error {
	result := r.db.session(ctx).
		Model(&models.QrCodeModel{}).
		Where("id = ? AND is_assigned = ?", qrID, false).
		Updates(map[string]interface{}{
			"is_assigned":      true,
			"asset_id":         assetID,
			"registered_by_id": registeredBy,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to assign qr code: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainQr.ErrCodeAlreadyAssigned
	}

	return nil
}

func (r *QrCodeRepository) UnassignByAsset(ctx context.Context, assetID uuid.UUID) error {
	err := r.db.session(ctx).
		Model(&models.QrCodeModel{}).
		Where("asset_id = ?", assetID).
		Updates(map[string]interface{}{
			"is_assigned": false,
			"asset_id":    nil,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to unassign qr codes: %w", err)
	}

	return nil
}

func toQrCodeModel(q *domainQr.QrCode) *models.QrCodeModel {
	return &models.QrCodeModel{
		ID:             q.ID,
		Code:           q.Code,
		IsAssigned:     q.IsAssigned,
		AssetID:        q.AssetID,
		RegisteredByID: q.RegisteredByID,
		CreatedAt:      q.CreatedAt,
	}
}

func toQrCodeEntity(m *models.QrCodeModel) *domainQr.QrCode {
	return &domainQr.QrCode{
		ID:             m.ID,
		Code:           m.Code,
		IsAssigned:     m.IsAssigned,
		AssetID:        m.AssetID,
		RegisteredByID: m.RegisteredByID,
		CreatedAt:      m.CreatedAt,
	}
}
