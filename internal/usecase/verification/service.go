package verification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainAsset "asset-tracker/internal/domain/asset"
	domainComplaint "asset-tracker/internal/domain/complaint"
	domainUser "asset-tracker/internal/domain/user"
	domainVerification "asset-tracker/internal/domain/verification"
	"asset-tracker/internal/logger"
	appErrors "asset-tracker/pkg/errors"
	"asset-tracker/pkg/utils"
)

// Service implements verification and complaint recording. Two verification
// paths coexist on purpose: VerifyAsset updates the asset's lastVerifiedAt,
// LogVerification appends to the ledger without touching the asset.
type Service struct {
	assetRepo     domainAsset.Repository
	userRepo      domainUser.Repository
	ledger        domainVerification.Repository
	complaintRepo domainComplaint.Repository
}

// NewService creates a new verification service
func NewService(
	assetRepo domainAsset.Repository,
	userRepo domainUser.Repository,
	ledger domainVerification.Repository,
	complaintRepo domainComplaint.Repository,
) *Service {
	return &Service{
		assetRepo:     assetRepo,
		userRepo:      userRepo,
		ledger:        ledger,
		complaintRepo: complaintRepo,
	}
}

// VerifyAsset is the staff-facing strong path: it appends a ledger entry and
// advances the asset's lastVerifiedAt to the event timestamp.
func (s *Service) VerifyAsset(ctx context.Context, req *VerifyAssetRequest, actor uuid.UUID) (*VerificationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("asset_id is required", err)
	}

	verifier, err := s.resolveActor(ctx, actor)
	if err != nil {
		return nil, err
	}

	if err := s.assertAssetExists(ctx, req.AssetID); err != nil {
		return nil, err
	}

	verifiedAt := time.Now()
	entry := &domainVerification.Log{
		AssetID:      req.AssetID,
		VerifiedByID: actor,
		VerifiedAt:   verifiedAt,
	}
	if err := s.ledger.Create(ctx, entry); err != nil {
		return nil, appErrors.Internal(err)
	}

	if err := s.assetRepo.SetLastVerifiedAt(ctx, req.AssetID, verifiedAt); err != nil {
		return nil, appErrors.Internal(err)
	}

	logger.Info("Asset verified",
		zap.String("asset_id", req.AssetID.String()),
		zap.String("verified_by", actor.String()),
		zap.String("event", "asset_verified"),
	)

	return &VerificationResponse{
		AssetID:    req.AssetID,
		VerifiedAt: verifiedAt,
		VerifiedBy: Verifier{
			ID:       verifier.ID,
			Username: verifier.Username,
			FullName: verifier.FullName,
		},
	}, nil
}

// LogVerification is the append-only path: it records the event without
// advancing lastVerifiedAt. Kept separate from VerifyAsset because callers
// depend on the difference.
func (s *Service) LogVerification(ctx context.Context, req *LogVerificationRequest, actor uuid.UUID) (*VerificationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("asset_id is required", err)
	}

	verifier, err := s.resolveActor(ctx, actor)
	if err != nil {
		return nil, err
	}

	if err := s.assertAssetExists(ctx, req.AssetID); err != nil {
		return nil, err
	}

	verifiedAt := time.Now()
	if req.VerifiedAt != nil {
		verifiedAt = *req.VerifiedAt
	}

	entry := &domainVerification.Log{
		AssetID:      req.AssetID,
		VerifiedByID: actor,
		VerifiedAt:   verifiedAt,
	}
	if err := s.ledger.Create(ctx, entry); err != nil {
		return nil, appErrors.Internal(err)
	}

	return &VerificationResponse{
		AssetID:    req.AssetID,
		VerifiedAt: verifiedAt,
		VerifiedBy: Verifier{
			ID:       verifier.ID,
			Username: verifier.Username,
			FullName: verifier.FullName,
		},
	}, nil
}

// ReportIssue files a PENDING complaint against an existing asset.
func (s *Service) ReportIssue(ctx context.Context, req *ReportIssueRequest, actor uuid.UUID) (*ComplaintResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("invalid complaint", err)
	}

	if err := s.assertAssetExists(ctx, req.AssetID); err != nil {
		return nil, err
	}

	c := &domainComplaint.Complaint{
		AssetID:      req.AssetID,
		ReportedByID: actor,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Status:       domainComplaint.StatusPending,
	}
	if err := s.complaintRepo.Create(ctx, c); err != nil {
		return nil, appErrors.Internal(err)
	}

	logger.Info("Issue reported",
		zap.String("asset_id", req.AssetID.String()),
		zap.String("complaint_id", c.ID.String()),
		zap.String("reported_by", actor.String()),
		zap.String("event", "issue_reported"),
	)

	return toComplaintResponse(c), nil
}

// ResolveComplaint flips a complaint to RESOLVED. Resolving an already
// resolved complaint is accepted and leaves it unchanged.
func (s *Service) ResolveComplaint(ctx context.Context, complaintID uuid.UUID) (*ComplaintResponse, error) {
	c, err := s.complaintRepo.GetByID(ctx, complaintID)
	if errors.Is(err, domainComplaint.ErrComplaintNotFound) {
		return nil, appErrors.NotFound("complaint not found")
	}
	if err != nil {
		return nil, appErrors.Internal(err)
	}

	if c.Status == domainComplaint.StatusResolved {
		return toComplaintResponse(c), nil
	}

	if err := s.complaintRepo.MarkResolved(ctx, complaintID); err != nil {
		return nil, appErrors.Internal(err)
	}

	resolved, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, appErrors.Internal(err)
	}

	logger.Info("Complaint resolved",
		zap.String("complaint_id", complaintID.String()),
		zap.String("event", "complaint_resolved"),
	)

	return toComplaintResponse(resolved), nil
}

func (s *Service) assertAssetExists(ctx context.Context, assetID uuid.UUID) error {
	if _, err := s.assetRepo.GetByID(ctx, assetID); err != nil {
		if errors.Is(err, domainAsset.ErrAssetNotFound) {
			return appErrors.NotFound("asset not found")
		}
		return appErrors.Internal(err)
	}
	return nil
}

func (s *Service) resolveActor(ctx context.Context, actor uuid.UUID) (*domainUser.User, error) {
	u, err := s.userRepo.GetByID(ctx, actor)
	if errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, appErrors.NotFound("acting user not found")
	}
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	if !u.IsActive {
		return nil, appErrors.NewAppError(appErrors.CodeForbidden, "acting user is inactive", domainUser.ErrUserInactive)
	}
	return u, nil
}
