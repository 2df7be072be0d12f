package asset

import (
	"time"

	"github.com/google/uuid"
)

// Asset represents a tracked physical item in the domain
type Asset struct {
	ID             uuid.UUID
	Name           string
	Category       Category
	SerialNumber   *string
	Location       *string
	Status         Status
	IsDeleted      bool
	IsQrGenerated  bool
	LastVerifiedAt *time.Time
	RegisteredByID *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Category classifies the kind of physical item being tracked
type Category string

const (
	CategoryLaptop Category = "LAPTOP"
	CategoryCamera Category = "CAMERA"
	CategoryMobile Category = "MOBILE"
	CategoryTablet Category = "TABLET"
	CategoryOther  Category = "OTHER"
)

// Status represents the lifecycle status of an asset
type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusMaintenance Status = "MAINTENANCE"
	StatusRetired     Status = "RETIRED"
	StatusLost        Status = "LOST"
)

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryLaptop, CategoryCamera, CategoryMobile, CategoryTablet, CategoryOther:
		return true
	}
	return false
}

// IsValid reports whether the status is one of the known values.
// Transitions between valid statuses are intentionally unconstrained.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusRetired, StatusLost:
		return true
	}
	return false
}
