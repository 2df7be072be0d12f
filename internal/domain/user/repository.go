package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the read-only surface of the user store the core depends on.
type Repository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
