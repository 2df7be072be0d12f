package qr

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

// registerRetries bounds how often registration-time inserts are retried
// when a minted code loses a duplicate-key race.
const registerRetries = 3

// Transactor runs a function inside one storage transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the QR registry use cases: bulk generation, lookup,
// registration and regeneration.
type Service struct {
	qrRepo    domainQr.Repository
	assetRepo domainAsset.Repository
	generator *Generator
	tx        Transactor
}

// NewService creates a new QR service
func NewService(qrRepo domainQr.Repository, assetRepo domainAsset.Repository, tx Transactor) *Service {
	return &Service{
		qrRepo:    qrRepo,
		assetRepo: assetRepo,
		generator: NewGenerator(qrRepo),
		tx:        tx,
	}
}

// GenerateCodes mints a batch of unassigned codes. The insert silently skips
// codes that raced into existence, so Created may be lower than Requested.
func (s *Service) GenerateCodes(ctx context.Context, req *GenerateRequest, actor uuid.UUID) (*GenerateResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("count must be between 1 and 100", err)
	}

	codes, err := s.generator.NewBatch(ctx, req.Count)
	if err != nil {
		return nil, mapGenerationError(err)
	}

	created, err := s.qrRepo.CreateBatch(ctx, codes, &actor)
	if err != nil {
		return nil, appErrors.Internal(err)
	}

	logger.Info("QR codes generated",
		zap.Int("requested", req.Count),
		zap.Int64("created", created),
		zap.String("generated_by", actor.String()),
		zap.String("event", "qr_codes_generated"),
	)

	return &GenerateResponse{
		Requested: req.Count,
		Created:   int(created),
		Codes:     codes,
	}, nil
}

// VerifyCode resolves a scanned code into one of three outcomes: unknown,
// assigned (with the bound asset), or unassigned and ready for registration.
func (s *Service) VerifyCode(ctx context.Context, req *VerifyQrRequest) (*VerifyQrResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("qr_code is required", err)
	}

	code, err := s.qrRepo.GetByCode(ctx, req.Code)
	if errors.Is(err, domainQr.ErrCodeNotFound) {
		return &VerifyQrResponse{Valid: false}, nil
	}
	if err != nil {
		return nil, appErrors.Internal(err)
	}

	if !code.IsAssigned {
		return &VerifyQrResponse{
			Valid:           true,
			AlreadyAssigned: false,
			QrID:            &code.ID,
			QrCode:          code.Code,
		}, nil
	}

	resp := &VerifyQrResponse{
		Valid:           true,
		AlreadyAssigned: true,
	}

	// A dangling asset reference reports asset:null instead of failing.
	if code.AssetID != nil {
		asset, err := s.assetRepo.GetByID(ctx, *code.AssetID)
		if err != nil && !errors.Is(err, domainAsset.ErrAssetNotFound) {
			return nil, appErrors.Internal(err)
		}
		resp.Asset = toAssetSummary(asset)
	}

	return resp, nil
}

// RegisterAsset binds an unassigned code to a newly created asset. Both
// writes happen in one transaction; a failed precondition creates nothing.
func (s *Service) RegisterAsset(ctx context.Context, req *RegisterAssetRequest, actor uuid.UUID) (*RegisteredAssetResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("invalid registration request", err)
	}

	code, err := s.qrRepo.GetByCode(ctx, req.QrCode)
	if errors.Is(err, domainQr.ErrCodeNotFound) {
		return nil, appErrors.NotFound("QR code not found")
	}
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	if code.IsAssigned {
		return nil, appErrors.Conflict("QR code already assigned")
	}

	asset := &domainAsset.Asset{
		Name:           req.AssetName,
		Category:       domainAsset.Category(req.Category),
		SerialNumber:   req.SerialNumber,
		Location:       req.Location,
		Status:         domainAsset.StatusActive,
		IsQrGenerated:  true,
		RegisteredByID: &actor,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.assetRepo.Create(ctx, asset); err != nil {
			return err
		}
		return s.qrRepo.Assign(ctx, code.ID, asset.ID, &actor)
	})
	if errors.Is(err, domainQr.ErrCodeAlreadyAssigned) {
		return nil, appErrors.Conflict("QR code already assigned")
	}
	if err != nil {
		return nil, appErrors.Internal(fmt.Errorf("registration failed: %w", err))
	}

	logger.Info("Asset registered",
		zap.String("asset_id", asset.ID.String()),
		zap.String("qr_code", code.Code),
		zap.String("registered_by", actor.String()),
		zap.String("event", "asset_registered"),
	)

	return &RegisteredAssetResponse{
		ID:             asset.ID,
		Name:           asset.Name,
		Category:       asset.Category,
		SerialNumber:   asset.SerialNumber,
		Location:       asset.Location,
		Status:         asset.Status,
		QrCode:         code.Code,
		RegisteredByID: asset.RegisteredByID,
		CreatedAt:      asset.CreatedAt,
	}, nil
}

// RegenerateCode retires the asset's current code and mints a replacement
// that is inserted pre-assigned. The retired code string is never reissued.
func (s *Service) RegenerateCode(ctx context.Context, assetID uuid.UUID, actor uuid.UUID) (*QrCodeResponse, error) {
	// Soft-deleted assets still resolve here.
	if _, err := s.assetRepo.GetByID(ctx, assetID); err != nil {
		if errors.Is(err, domainAsset.ErrAssetNotFound) {
			return nil, appErrors.NotFound("asset not found")
		}
		return nil, appErrors.Internal(err)
	}

	// A lost duplicate-key race aborts the transaction, so the mint and the
	// paired writes are retried together with a fresh candidate.
	for attempt := 0; attempt < registerRetries; attempt++ {
		code, err := s.generator.NewCode(ctx)
		if err != nil {
			return nil, mapGenerationError(err)
		}

		replacement := &domainQr.QrCode{
			Code:           code,
			IsAssigned:     true,
			AssetID:        &assetID,
			RegisteredByID: &actor,
		}

		err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.qrRepo.UnassignByAsset(ctx, assetID); err != nil {
				return err
			}
			return s.qrRepo.Create(ctx, replacement)
		})
		if errors.Is(err, domainQr.ErrCodeAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, appErrors.Internal(fmt.Errorf("regeneration failed: %w", err))
		}

		logger.Info("QR code regenerated",
			zap.String("asset_id", assetID.String()),
			zap.String("new_code", replacement.Code),
			zap.String("event", "qr_code_regenerated"),
		)

		return toQrCodeResponse(replacement), nil
	}

	return nil, mapGenerationError(domainQr.ErrGenerationExhausted)
}

func mapGenerationError(err error) error {
	switch {
	case errors.Is(err, domainQr.ErrInvalidCount):
		return appErrors.Validation(err.Error(), nil)
	case errors.Is(err, domainQr.ErrGenerationExhausted):
		return appErrors.NewAppError(appErrors.CodeGenerationExhausted, "could not generate a unique QR code", err)
	default:
		return appErrors.Internal(err)
	}
}
