package qrcode

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for the QR code registry.
// The code column is backed by a storage-level unique index, so a
// check-then-insert race surfaces as ErrCodeAlreadyExists rather than a
// duplicate row.
type Repository interface {
	// Create inserts a single code. Returns ErrCodeAlreadyExists when the
	// code string raced into existence concurrently.
	Create(ctx context.Context, code *QrCode) error

	// CreateBatch inserts the given code strings as unassigned rows,
	// silently skipping any that already exist. Returns the number of rows
	// actually inserted.
	CreateBatch(ctx context.Context, codes []string, registeredBy *uuid.UUID) (int64, error)

	GetByCode(ctx context.Context, code string) (*QrCode, error)

	// FindExistingCodes returns the subset of the given code strings that
	// are already persisted.
	FindExistingCodes(ctx context.Context, codes []string) ([]string, error)

	Exists(ctx context.Context, code string) (bool, error)

	// Assign binds an unassigned code to an asset. Returns
	// ErrCodeAlreadyAssigned when the row was assigned in the meantime.
	Assign(ctx context.Context, qrID, assetID uuid.UUID, registeredBy *uuid.UUID) error

	// UnassignByAsset releases every code currently pointing at the asset.
	// Released code strings stay in the registry and are never reissued.
	UnassignByAsset(ctx context.Context, assetID uuid.UUID) error
}
