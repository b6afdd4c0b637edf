// Package auth provides credential verification against the local database.
//
// Passwords are stored as Argon2id hashes and verified with a constant-time
// comparison. The service deliberately reports unknown usernames, wrong
// passwords and disabled accounts through distinct errors so callers can
// log the difference, while the HTTP boundary maps all of them to one
// uniform response.
package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/db/models"
)

// Service provides authentication against the local user table.
type Service struct {
	db *gorm.DB
}

// NewService creates a new auth service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Authenticate verifies a username/password pair against the database.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	var user models.User

	err := s.db.Where("username = ?", username).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	// Check if user is active
	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	// Verify password
	if !user.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	return &user, nil
}

// CreateUser creates a new local user.
func (s *Service) CreateUser(username, password string) (*models.User, error) {
	// Check if user already exists
	var existingUser models.User

	err := s.db.Where("username = ?", username).First(&existingUser).Error
	if err == nil {
		return nil, ErrUserExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := models.User{
		Active:   true,
		Username: username,
		Password: models.HashPassword(password),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// ResetPassword replaces a user's password hash.
func (s *Service) ResetPassword(userID uint64, newPassword string) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", models.HashPassword(newPassword)).Error
}
