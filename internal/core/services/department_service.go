package services

import (
	"context"
	"fmt"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/google/uuid"
)

// departmentService implements DepartmentSvcFacade.
type departmentService struct {
	departmentRepo portsrepo.DepartmentRepository
	employeeRepo   portsrepo.EmployeeRepository
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepository, employeeRepo portsrepo.EmployeeRepository) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: departmentRepo, employeeRepo: employeeRepo}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorID string) (*domain.Department, error) {
	now := time.Now()
	department := domain.Department{
		DepartmentID: uuid.NewString(),
		Name:         req.Name,
		HeadID:       req.HeadID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to save department: %w", err)
	}
	return &department, nil
}

func (s *departmentService) GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find department %s: %w", departmentID, err)
	}
	return department, nil
}

func (s *departmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.FindDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// ListDepartmentMembers returns the employees assigned to a department. The
// department is looked up first so an unknown ID yields a 404 rather than an
// empty list.
func (s *departmentService) ListDepartmentMembers(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	if _, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return nil, fmt.Errorf("failed to find department %s: %w", departmentID, err)
	}

	members, err := s.employeeRepo.FindEmployeesByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of department %s: %w", departmentID, err)
	}
	return members, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, updaterID string) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		department.Name = *req.Name
		updated = true
	}
	if req.HeadID != nil {
		department.HeadID = req.HeadID
		updated = true
	}
	if !updated {
		return department, nil
	}

	department.LastUpdatedAt = time.Now()
	department.LastUpdatedBy = updaterID

	if err := s.departmentRepo.UpdateDepartment(ctx, *department); err != nil {
		return nil, fmt.Errorf("failed to update department %s: %w", departmentID, err)
	}
	return department, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	count, err := s.departmentRepo.CountEmployeesInDepartment(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("failed to count employees in department %s: %w", departmentID, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: department still has %d employees", apperrors.ErrConflict, count)
	}

	if err := s.departmentRepo.DeleteDepartment(ctx, departmentID); err != nil {
		return fmt.Errorf("failed to delete department %s: %w", departmentID, err)
	}
	return nil
}
