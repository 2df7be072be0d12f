package verification

import (
	"time"

	"github.com/google/uuid"
)

// Log is an append-only record of a physical check of an asset.
// VerifiedByID is always the acting user's id; display names are resolved
// through the user store, never stored here.
type Log struct {
	ID           uuid.UUID
	AssetID      uuid.UUID
	VerifiedByID uuid.UUID
	VerifiedAt   time.Time
}
