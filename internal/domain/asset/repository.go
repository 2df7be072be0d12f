package asset

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for asset persistence.
// Lookups by ID deliberately include soft-deleted rows: a deleted asset
// still resolves so its history and QR bindings can be inspected.
type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, assetID uuid.UUID) (*Asset, error)
	Update(ctx context.Context, asset *Asset) error
	SetLastVerifiedAt(ctx context.Context, assetID uuid.UUID, verifiedAt time.Time) error
	SoftDelete(ctx context.Context, assetID uuid.UUID) error
}
