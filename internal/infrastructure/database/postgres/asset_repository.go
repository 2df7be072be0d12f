package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainAsset "asset-tracker/internal/domain/asset"
	"asset-tracker/internal/infrastructure/database/postgres/models"
)

// AssetRepository implements asset.Repository on GORM.
type AssetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domainAsset.Repository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, a *domainAsset.Asset) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()

	dbModel := toAssetModel(a)
	if err := r.db.session(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID uuid.UUID) (*domainAsset.Asset, error) {
	var dbModel models.AssetModel
	err := r.db.session(ctx).
		Where("id = ?", assetID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainAsset.ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return toAssetEntity(&dbModel), nil
}

func (r *AssetRepository) Update(ctx context.Context, a *domainAsset.Asset) error {
	a.UpdatedAt = time.Now()

	result := r.db.session(ctx).
		Model(&models.AssetModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"name":          a.Name,
			"category":      string(a.Category),
			"serial_number": a.SerialNumber,
			"location":      a.Location,
			"status":        string(a.Status),
			"updated_at":    a.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainAsset.ErrAssetNotFound
	}

	return nil
}

func (r *AssetRepository) SetLastVerifiedAt(ctx context.Context, assetID uuid.UUID, verifiedAt time.Time) error {
	result := r.db.session(ctx).
		Model(&models.AssetModel{}).
		Where("id = ?", assetID).
		Updates(map[string]interface{}{
			"last_verified_at": verifiedAt,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set last verified at: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainAsset.ErrAssetNotFound
	}

	return nil
}

// SoftDelete flips is_deleted only. Status is deliberately left untouched;
// releasing the asset's QR codes is the caller's responsibility.
func (r *AssetRepository) SoftDelete(ctx context.Context, assetID uuid.UUID) error {
	result := r.db.session(ctx).
		Model(&models.AssetModel{}).
		Where("id = ? AND is_deleted = ?", assetID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to soft delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainAsset.ErrAssetNotFound
	}

	return nil
}

func toAssetModel(a *domainAsset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:             a.ID,
		Name:           a.Name,
		Category:       string(a.Category),
		SerialNumber:   a.SerialNumber,
		Location:       a.Location,
		Status:         string(a.Status),
		IsDeleted:      a.IsDeleted,
		IsQrGenerated:  a.IsQrGenerated,
		LastVerifiedAt: a.LastVerifiedAt,
		RegisteredByID: a.RegisteredByID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toAssetEntity(m *models.AssetModel) *domainAsset.Asset {
	return &domainAsset.Asset{
		ID:             m.ID,
		Name:           m.Name,
		Category:       domainAsset.Category(m.Category),
		SerialNumber:   m.SerialNumber,
		Location:       m.Location,
		Status:         domainAsset.Status(m.Status),
		IsDeleted:      m.IsDeleted,
		IsQrGenerated:  m.IsQrGenerated,
		LastVerifiedAt: m.LastVerifiedAt,
		RegisteredByID: m.RegisteredByID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
