package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/andikarp/hris-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// employeeService implements EmployeeSvcFacade.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepository
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorID string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:     uuid.NewString(),
		FullName:       req.FullName,
		Email:          req.Email,
		PasswordHash:   passwordHash,
		Role:           domain.Role(req.Role),
		EmploymentType: domain.EmploymentType(req.EmploymentType),
		StartDate:      startDate,
		DepartmentID:   req.DepartmentID,
		ManagerID:      req.ManagerID,
		LeaveBalance:   decimal.Zero,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) ListSubordinates(ctx context.Context, managerID string) ([]domain.Employee, error) {
	subordinates, err := s.employeeRepo.FindSubordinates(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subordinates of %s: %w", managerID, err)
	}
	return subordinates, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.FullName != nil {
		employee.FullName = *req.FullName
		updated = true
	}
	if req.Role != nil {
		employee.Role = domain.Role(*req.Role)
		updated = true
	}
	if req.EmploymentType != nil {
		employee.EmploymentType = domain.EmploymentType(*req.EmploymentType)
		updated = true
	}
	if req.DepartmentID != nil {
		employee.DepartmentID = req.DepartmentID
		updated = true
	}
	if req.ManagerID != nil {
		employee.ManagerID = req.ManagerID
		updated = true
	}
	if !updated {
		return employee, nil
	}

	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = updaterID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Employee updated", slog.String("employee_id", employeeID))
	return employee, nil
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, employeeID string, updaterID string) error {
	if err := s.employeeRepo.DeactivateEmployee(ctx, employeeID, updaterID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate employee %s: %w", employeeID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Employee deactivated", slog.String("employee_id", employeeID))
	return nil
}
