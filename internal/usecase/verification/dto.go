package verification

import (
	"time"

	"github.com/google/uuid"

	domainComplaint "asset-tracker/internal/domain/complaint"
)

type VerifyAssetRequest struct {
	AssetID uuid.UUID `json:"asset_id" validate:"required"`
}

// LogVerificationRequest feeds the append-only path. VerifiedAt defaults to
// the current time when omitted.
type LogVerificationRequest struct {
	AssetID    uuid.UUID  `json:"asset_id" validate:"required"`
	VerifiedAt *time.Time `json:"verified_at"`
}

type VerificationResponse struct {
	AssetID    uuid.UUID `json:"asset_id"`
	VerifiedAt time.Time `json:"verified_at"`
	VerifiedBy Verifier  `json:"verified_by"`
}

// Verifier is the acting user resolved through the user store; the ledger
// itself only carries the id.
type Verifier struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
}

type ReportIssueRequest struct {
	AssetID     uuid.UUID `json:"asset_id" validate:"required"`
	Description string    `json:"description" validate:"required,min=1,max=2000"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,max=512"`
}

type ComplaintResponse struct {
	ID           uuid.UUID              `json:"id"`
	AssetID      uuid.UUID              `json:"asset_id"`
	ReportedByID uuid.UUID              `json:"reported_by_id"`
	Description  string                 `json:"description"`
	ImageURL     *string                `json:"image_url"`
	Status       domainComplaint.Status `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	ResolvedAt   *time.Time             `json:"resolved_at"`
}

func toComplaintResponse(c *domainComplaint.Complaint) *ComplaintResponse {
	return &ComplaintResponse{
		ID:           c.ID,
		AssetID:      c.AssetID,
		ReportedByID: c.ReportedByID,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		ResolvedAt:   c.ResolvedAt,
	}
}
