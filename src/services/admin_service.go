package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AdminService handles admin account operations
type AdminService struct {
	repo repositories.AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

// CreateAdmin creates a new admin with a bcrypt-hashed password.
// Returns ErrAdminExists when the email is already registered.
func (as *AdminService) CreateAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	if len(email) < 3 || len(email) > 255 {
		return nil, fmt.Errorf("%w: email must be between 3 and 255 characters", ErrInvalidAdminInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidAdminInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := as.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// Authenticate verifies email and password against the stored bcrypt hash.
// Absent email and wrong password return the same ErrInvalidCredentials.
func (as *AdminService) Authenticate(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := as.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// HasAdmin reports whether an admin with the given email exists
func (as *AdminService) HasAdmin(ctx context.Context, email string) (bool, error) {
	_, err := as.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
