package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainUser "asset-tracker/internal/domain/user"
	"asset-tracker/internal/infrastructure/database/postgres/models"
)

// UserRepository implements the read-only user.Repository the core depends
// on. Writes to the user table belong to the auth service.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) domainUser.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.session(ctx).
		Where("id = ?", userID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.session(ctx).
		Where("username = ?", username).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func toUserEntity(m *models.UserModel) *domainUser.User {
	return &domainUser.User{
		ID:          m.ID,
		Username:    m.Username,
		FullName:    m.FullName,
		Email:       m.Email,
		Role:        m.Role,
		Designation: m.Designation,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}
