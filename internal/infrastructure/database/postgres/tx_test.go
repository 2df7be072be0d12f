package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainAsset "asset-tracker/internal/domain/asset"
	domainQr "asset-tracker/internal/domain/qrcode"
	"asset-tracker/internal/infrastructure/database/postgres/models"
)

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	assetRepo := NewAssetRepository(db)
	qrRepo := NewQrCodeRepository(db)

	asset := &domainAsset.Asset{
		Name:     "Laptop-1",
		Category: domainAsset.CategoryLaptop,
		Status:   domainAsset.StatusActive,
	}
	code := &domainQr.QrCode{Code: "QR-101010"}

	err := db.WithinTx(context.Background(), func(ctx context.Context) error {
		if err := assetRepo.Create(ctx, asset); err != nil {
			return err
		}
		if err := qrRepo.Create(ctx, code); err != nil {
			return err
		}
		return qrRepo.Assign(ctx, code.ID, asset.ID, nil)
	})
	require.NoError(t, err)

	stored, err := qrRepo.GetByCode(context.Background(), "QR-101010")
	require.NoError(t, err)
	assert.True(t, stored.IsAssigned)
	require.NotNil(t, stored.AssetID)
	assert.Equal(t, asset.ID, *stored.AssetID)
}

func TestWithinTx_RollsBackAllWritesOnError(t *testing.T) {
	db := newTestDB(t)
	assetRepo := NewAssetRepository(db)

	boom := errors.New("boom")
	err := db.WithinTx(context.Background(), func(ctx context.Context) error {
		if err := assetRepo.Create(ctx, &domainAsset.Asset{
			Name:     "Laptop-1",
			Category: domainAsset.CategoryLaptop,
			Status:   domainAsset.StatusActive,
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.DB.Model(&models.AssetModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSession_OutsideTransactionUsesPlainHandle(t *testing.T) {
	db := newTestDB(t)
	assetRepo := NewAssetRepository(db)

	asset := &domainAsset.Asset{
		Name:     "Camera-1",
		Category: domainAsset.CategoryCamera,
		Status:   domainAsset.StatusActive,
	}
	require.NoError(t, assetRepo.Create(context.Background(), asset))

	stored, err := assetRepo.GetByID(context.Background(), asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "Camera-1", stored.Name)
}

func TestSoftDelete_GuardRejectsSecondDelete(t *testing.T) {
	db := newTestDB(t)
	assetRepo := NewAssetRepository(db)
	ctx := context.Background()

	asset := &domainAsset.Asset{
		Name:     "Tablet-1",
		Category: domainAsset.CategoryTablet,
		Status:   domainAsset.StatusActive,
	}
	require.NoError(t, assetRepo.Create(ctx, asset))

	require.NoError(t, assetRepo.SoftDelete(ctx, asset.ID))

	err := assetRepo.SoftDelete(ctx, asset.ID)
	assert.ErrorIs(t, err, domainAsset.ErrAssetNotFound)
}

func TestSoftDelete_UnknownAsset(t *testing.T) {
	db := newTestDB(t)
	assetRepo := NewAssetRepository(db)

	err := assetRepo.SoftDelete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainAsset.ErrAssetNotFound)
}
