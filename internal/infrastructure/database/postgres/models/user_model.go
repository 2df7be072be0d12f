package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the user table owned by the auth service. This service
// only reads from it.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Username    string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	FullName    string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role        string    `gorm:"type:varchar(20);not null"`
	Designation *string   `gorm:"type:varchar(100)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
