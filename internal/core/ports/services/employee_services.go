package services

import (
	"context"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/andikarp/hris-backend/internal/dto"
)

// EmployeeSvcFacade defines employee management operations.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorID string) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)
	ListSubordinates(ctx context.Context, managerID string) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterID string) (*domain.Employee, error)
	DeactivateEmployee(ctx context.Context, employeeID string, updaterID string) error
}

// DepartmentSvcFacade defines department management operations.
type DepartmentSvcFacade interface {
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorID string) (*domain.Department, error)
	GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	ListDepartmentMembers(ctx context.Context, departmentID string) ([]domain.Employee, error)
	UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, updaterID string) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, departmentID string) error
}
