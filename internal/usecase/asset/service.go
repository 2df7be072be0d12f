package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainAsset "asset-tracker/internal/domain/asset"
	domainQr "asset-tracker/internal/domain/qrcode"
	"asset-tracker/internal/logger"
	appErrors "asset-tracker/pkg/errors"
	"asset-tracker/pkg/utils"
)

// Transactor runs a function inside one storage transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements asset management use cases.
type Service struct {
	assetRepo domainAsset.Repository
	qrRepo    domainQr.Repository
	tx        Transactor
}

// NewService creates a new asset service
func NewService(assetRepo domainAsset.Repository, qrRepo domainQr.Repository, tx Transactor) *Service {
	return &Service{
		assetRepo: assetRepo,
		qrRepo:    qrRepo,
		tx:        tx,
	}
}

// CreateAsset records an asset without a QR binding. Codes are attached
// later through the registration flow.
func (s *Service) CreateAsset(ctx context.Context, req *CreateAssetRequest, actor uuid.UUID) (*AssetResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("invalid asset", err)
	}

	asset := &domainAsset.Asset{
		Name:           req.Name,
		Category:       domainAsset.Category(req.Category),
		SerialNumber:   req.SerialNumber,
		Location:       req.Location,
		Status:         domainAsset.StatusActive,
		IsQrGenerated:  false,
		RegisteredByID: &actor,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, appErrors.Internal(err)
	}

	logger.Info("Asset created",
		zap.String("asset_id", asset.ID.String()),
		zap.String("category", string(asset.Category)),
		zap.String("event", "asset_created"),
	)

	return ToAssetResponse(asset), nil
}

func (s *Service) GetAsset(ctx context.Context, assetID uuid.UUID) (*AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if errors.Is(err, domainAsset.ErrAssetNotFound) {
		return nil, appErrors.NotFound("asset not found")
	}
	if err != nil {
		return nil, appErrors.Internal(err)
	}

	return ToAssetResponse(asset), nil
}

func (s *Service) UpdateAsset(ctx context.Context, assetID uuid.UUID, req *UpdateAssetRequest) (*AssetResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("invalid asset update", err)
	}

	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if errors.Is(err, domainAsset.ErrAssetNotFound) {
		return nil, appErrors.NotFound("asset not found")
	}
	if err != nil {
		return nil, appErrors.Internal(err)
	}

	asset.Name = req.Name
	asset.Category = domainAsset.Category(req.Category)
	asset.SerialNumber = req.SerialNumber
	asset.Status = domainAsset.Status(req.Status)

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, appErrors.Internal(err)
	}

	updated, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, appErrors.Internal(err)
	}

	logger.Info("Asset updated",
		zap.String("asset_id", assetID.String()),
		zap.String("status", string(updated.Status)),
		zap.String("event", "asset_updated"),
	)

	return ToAssetResponse(updated), nil
}

// DeleteAsset soft-deletes the asset and releases its QR codes as one unit.
// The deletion is one-way; the asset's status is not changed.
func (s *Service) DeleteAsset(ctx context.Context, assetID uuid.UUID) error {
	if _, err := s.assetRepo.GetByID(ctx, assetID); err != nil {
		if errors.Is(err, domainAsset.ErrAssetNotFound) {
			return appErrors.NotFound("asset not found")
		}
		return appErrors.Internal(err)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.assetRepo.SoftDelete(ctx, assetID); err != nil {
			// Already-deleted assets report not found from the guard above,
			// so any failure here is unexpected.
			return err
		}
		return s.qrRepo.UnassignByAsset(ctx, assetID)
	})
	if errors.Is(err, domainAsset.ErrAssetNotFound) {
		return appErrors.Conflict("asset already deleted")
	}
	if err != nil {
		return appErrors.Internal(fmt.Errorf("soft delete failed: %w", err))
	}

	logger.Info("Asset soft-deleted",
		zap.String("asset_id", assetID.String()),
		zap.String("event", "asset_deleted"),
	)

	return nil
}
