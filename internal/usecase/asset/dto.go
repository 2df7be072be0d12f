package asset

import (
	"time"

	"github.com/google/uuid"

	domainAsset "asset-tracker/internal/domain/asset"
)

type CreateAssetRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=255"`
	Category     string  `json:"category" validate:"required,oneof=LAPTOP CAMERA MOBILE TABLET OTHER"`
	SerialNumber *string `json:"serial_number" validate:"omitempty,max=255"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
}

// UpdateAssetRequest permits any enumerated status; transitions are not
// constrained beyond membership in the enum.
type UpdateAssetRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=255"`
	Category     string  `json:"category" validate:"required,oneof=LAPTOP CAMERA MOBILE TABLET OTHER"`
	SerialNumber *string `json:"serial_number" validate:"omitempty,max=255"`
	Status       string  `json:"status" validate:"required,oneof=ACTIVE MAINTENANCE RETIRED LOST"`
}

type AssetResponse struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Category       domainAsset.Category `json:"category"`
	SerialNumber   *string              `json:"serial_number"`
	Location       *string              `json:"location"`
	Status         domainAsset.Status   `json:"status"`
	IsDeleted      bool                 `json:"is_deleted"`
	IsQrGenerated  bool                 `json:"is_qr_generated"`
	LastVerifiedAt *time.Time           `json:"last_verified_at"`
	RegisteredByID *uuid.UUID           `json:"registered_by_id"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func ToAssetResponse(a *domainAsset.Asset) *AssetResponse {
	if a == nil {
		return nil
	}
	return &AssetResponse{
		ID:             a.ID,
		Name:           a.Name,
		Category:       a.Category,
		SerialNumber:   a.SerialNumber,
		Location:       a.Location,
		Status:         a.Status,
		IsDeleted:      a.IsDeleted,
		IsQrGenerated:  a.IsQrGenerated,
		LastVerifiedAt: a.LastVerifiedAt,
		RegisteredByID: a.RegisteredByID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
