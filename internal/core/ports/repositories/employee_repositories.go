package repositories

import (
	"context"
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)
	FindActiveEmployees(ctx context.Context) ([]domain.Employee, error)
	FindSubordinates(ctx context.Context, managerID string) ([]domain.Employee, error)
	FindEmployeesByDepartment(ctx context.Context, departmentID string) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeactivateEmployee(ctx context.Context, employeeID string, updatedBy string, at time.Time) error

	// UpdateLeaveBalance overwrites the stored leave balance.
	UpdateLeaveBalance(ctx context.Context, employeeID string, balance decimal.Decimal, updatedBy string, at time.Time) error
	UpdatePassword(ctx context.Context, employeeID string, passwordHash string, at time.Time) error
	UpdateRefreshToken(ctx context.Context, employeeID string, tokenHash string, expiry *time.Time, at time.Time) error
}
