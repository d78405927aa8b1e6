package services

import (
	"context"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/andikarp/hris-backend/internal/dto"
)

// AuthSvcFacade handles credential checks, token issuance and password
// changes.
type AuthSvcFacade interface {
	// Login verifies the credentials and issues an access + refresh token
	// pair. Unknown email and wrong password both return
	// apperrors.ErrUnauthorized.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Refresh rotates the refresh token and issues a new access token.
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)

	// ChangePassword changes the employee's password after verifying the
	// current one.
	ChangePassword(ctx context.Context, employeeID string, req dto.ChangePasswordRequest) error

	// GetProfile returns the authenticated employee.
	GetProfile(ctx context.Context, employeeID string) (*domain.Employee, error)
}
