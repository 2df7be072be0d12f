package complaint

import (
	"time"

	"github.com/google/uuid"
)

// Complaint is a staff-reported issue against an asset. The only permitted
// mutation is the one-way PENDING -> RESOLVED transition.
type Complaint struct {
	ID           uuid.UUID
	AssetID      uuid.UUID
	ReportedByID uuid.UUID
	Description  string
	ImageURL     *string
	Status       Status
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}

// Status represents the resolution state of a complaint
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusResolved Status = "RESOLVED"
)
