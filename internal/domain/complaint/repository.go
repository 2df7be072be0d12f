package complaint

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for complaint persistence.
type Repository interface {
	Create(ctx context.Context, complaint *Complaint) error
	GetByID(ctx context.Context, complaintID uuid.UUID) (*Complaint, error)
	MarkResolved(ctx context.Context, complaintID uuid.UUID) error
}
