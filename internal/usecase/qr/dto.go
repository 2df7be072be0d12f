package qr

import (
	"time"

	"github.com/google/uuid"

	domainAsset "asset-tracker/internal/domain/asset"
	domainQr "asset-tracker/internal/domain/qrcode"
)

type GenerateRequest struct {
	Count int `json:"count" validate:"required,min=1,max=100"`
}

type GenerateResponse struct {
	Requested int      `json:"requested"`
	Created   int      `json:"created"`
	Codes     []string `json:"codes"`
}

type VerifyQrRequest struct {
	Code string `json:"qr_code" validate:"required"`
}

// VerifyQrResponse has three mutually exclusive shapes: unknown code,
// assigned code with an asset summary, unassigned code ready to register.
type VerifyQrResponse struct {
	Valid           bool          `json:"valid"`
	AlreadyAssigned bool          `json:"already_assigned,omitempty"`
	QrID            *uuid.UUID    `json:"qr_id,omitempty"`
	QrCode          string        `json:"qr_code,omitempty"`
	Asset           *AssetSummary `json:"asset,omitempty"`
}

type AssetSummary struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Category     domainAsset.Category  `json:"category"`
	SerialNumber *string               `json:"serial_number"`
	Location     *string               `json:"location"`
	Status       domainAsset.Status    `json:"status"`
}

type RegisterAssetRequest struct {
	QrCode       string  `json:"qr_code" validate:"required"`
	AssetName    string  `json:"asset_name" validate:"required,min=1,max=255"`
	Category     string  `json:"category" validate:"required,oneof=LAPTOP CAMERA MOBILE TABLET OTHER"`
	SerialNumber *string `json:"serial_number" validate:"omitempty,max=255"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
}

type RegisteredAssetResponse struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Category       domainAsset.Category `json:"category"`
	SerialNumber   *string              `json:"serial_number"`
	Location       *string              `json:"location"`
	Status         domainAsset.Status   `json:"status"`
	QrCode         string               `json:"qr_code"`
	RegisteredByID *uuid.UUID           `json:"registered_by_id"`
	CreatedAt      time.Time            `json:"created_at"`
}

type QrCodeResponse struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	IsAssigned bool       `json:"is_assigned"`
	AssetID    *uuid.UUID `json:"asset_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toAssetSummary(a *domainAsset.Asset) *AssetSummary {
	if a == nil {
		return nil
	}
	return &AssetSummary{
		ID:           a.ID,
		Name:         a.Name,
		Category:     a.Category,
		SerialNumber: a.SerialNumber,
		Location:     a.Location,
		Status:       a.Status,
	}
}

func toQrCodeResponse(q *domainQr.QrCode) *QrCodeResponse {
	return &QrCodeResponse{
		ID:         q.ID,
		Code:       q.Code,
		IsAssigned: q.IsAssigned,
		AssetID:    q.AssetID,
		CreatedAt:  q.CreatedAt,
	}
}
