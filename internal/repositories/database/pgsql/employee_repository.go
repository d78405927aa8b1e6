package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type PgxEmployeeRepository struct {
	db *pgxpool.Pool
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{db: db}
}

var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

const employeeColumns = `
	employee_id, full_name, email, password_hash, role, employment_type,
	start_date, department_id, manager_id, leave_balance, is_active,
	refresh_token_hash, refresh_token_expiry,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.FullName,
		&e.Email,
		&e.PasswordHash,
		&e.Role,
		&e.EmploymentType,
		&e.StartDate,
		&e.DepartmentID,
		&e.ManagerID,
		&e.LeaveBalance,
		&e.IsActive,
		&e.RefreshTokenHash,
		&e.RefreshTokenExpiryTime,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db.Exec(ctx, query,
		employee.EmployeeID,
		employee.FullName,
		employee.Email,
		employee.PasswordHash,
		employee.Role,
		employee.EmploymentType,
		employee.StartDate,
		employee.DepartmentID,
		employee.ManagerID,
		employee.LeaveBalance,
		employee.IsActive,
		employee.RefreshTokenHash,
		employee.RefreshTokenExpiryTime,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	employee, err := scanEmployee(r.db.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	return employee, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1;`
	employee, err := scanEmployee(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
	return employee, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY created_at DESC, employee_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *PgxEmployeeRepository) FindActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *PgxEmployeeRepository) FindSubordinates(ctx context.Context, managerID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE manager_id = $1 ORDER BY full_name;`
	rows, err := r.db.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subordinates of %s: %w", managerID, err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *PgxEmployeeRepository) FindEmployeesByDepartment(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE department_id = $1 ORDER BY full_name;`
	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees of department %s: %w", departmentID, err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees SET
			full_name = $2,
			email = $3,
			role = $4,
			employment_type = $5,
			start_date = $6,
			department_id = $7,
			manager_id = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE employee_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		employee.EmployeeID,
		employee.FullName,
		employee.Email,
		employee.Role,
		employee.EmploymentType,
		employee.StartDate,
		employee.DepartmentID,
		employee.ManagerID,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update employee %s: %w", employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, updatedBy string, at time.Time) error {
	query := `
		UPDATE employees SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE employee_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, employeeID, at, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateLeaveBalance(ctx context.Context, employeeID string, balance decimal.Decimal, updatedBy string, at time.Time) error {
	query := `
		UPDATE employees SET leave_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE employee_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, employeeID, balance, at, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update leave balance for %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdatePassword(ctx context.Context, employeeID string, passwordHash string, at time.Time) error {
	query := `
		UPDATE employees SET password_hash = $2, last_updated_at = $3, last_updated_by = $1
		WHERE employee_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, employeeID, passwordHash, at)
	if err != nil {
		return fmt.Errorf("failed to update password for %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateRefreshToken(ctx context.Context, employeeID string, tokenHash string, expiry *time.Time, at time.Time) error {
	query := `
		UPDATE employees SET refresh_token_hash = $2, refresh_token_expiry = $3, last_updated_at = $4
		WHERE employee_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, employeeID, tokenHash, expiry, at)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
