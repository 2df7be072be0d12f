package qrcode

import (
	"time"

	"github.com/google/uuid"
)

// QrCode represents a minted identifier in the registry. The code string is
// immutable once created and is never deleted; only the assignment fields
// change over its lifetime.
type QrCode struct {
	ID             uuid.UUID
	Code           string
	IsAssigned     bool
	AssetID        *uuid.UUID
	RegisteredByID *uuid.UUID
	CreatedAt      time.Time
}
