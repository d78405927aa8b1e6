package repositories

import (
	"context"

	"github.com/andikarp/hris-backend/internal/core/domain"
)

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	SaveDepartment(ctx context.Context, department domain.Department) error
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
	FindDepartments(ctx context.Context) ([]domain.Department, error)
	UpdateDepartment(ctx context.Context, department domain.Department) error
	DeleteDepartment(ctx context.Context, departmentID string) error
	CountEmployeesInDepartment(ctx context.Context, departmentID string) (int, error)
}
