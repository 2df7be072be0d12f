package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the acting identity supplied by the external auth service. The
// core only ever reads it; credential management lives elsewhere.
type User struct {
	ID          uuid.UUID
	Username    string
	FullName    string
	Email       string
	Role        string
	Designation *string
	IsActive    bool
	CreatedAt   time.Time
}

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)
