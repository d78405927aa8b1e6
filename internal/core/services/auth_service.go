package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/andikarp/hris-backend/internal/platform/config"
	"github.com/andikarp/hris-backend/internal/utils"
)

// authService implements AuthSvcFacade on top of the employee repository.
type authService struct {
	cfg          *config.Config
	employeeRepo portsrepo.EmployeeRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, employeeRepo portsrepo.EmployeeRepository) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, employeeRepo: employeeRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error for unknown email and wrong password.
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up employee for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}

	if !employee.IsActive {
		logger.Warn("Login attempt for deactivated employee", slog.String("employee_id", employee.EmployeeID))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(req.Password, employee.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return s.issueTokens(ctx, employee)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up employee for refresh: %w", err)
	}

	if employee.RefreshTokenHash == "" || employee.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*employee.RefreshTokenExpiryTime) {
		logger.Info("Refresh token expired", slog.String("employee_id", employee.EmployeeID))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(req.RefreshToken, employee.RefreshTokenHash) {
		logger.Warn("Refresh token mismatch", slog.String("employee_id", employee.EmployeeID))
		return nil, apperrors.ErrUnauthorized
	}

	return s.issueTokens(ctx, employee)
}

// issueTokens creates an access + refresh token pair and rotates the stored
// refresh token hash.
func (s *authService) issueTokens(ctx context.Context, employee *domain.Employee) (*dto.LoginResponse, error) {
	accessExpiry := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(employee.EmployeeID, string(employee.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshExpiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	hash := utils.HashRefreshToken(rawRefreshToken)
	if err := s.employeeRepo.UpdateRefreshToken(ctx, employee.EmployeeID, hash, &refreshExpiry, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiry,
		RefreshToken:          rawRefreshToken,
		RefreshTokenExpiresAt: refreshExpiry,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, employeeID string, req dto.ChangePasswordRequest) error {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to look up employee for password change: %w", err)
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, employee.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.employeeRepo.UpdatePassword(ctx, employeeID, newHash, time.Now()); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Password changed", slog.String("employee_id", employeeID))
	return nil
}

func (s *authService) GetProfile(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return employee, nil
}
