package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDepartmentRepository struct {
	db *pgxpool.Pool
}

func newPgxDepartmentRepository(db *pgxpool.Pool) portsrepo.DepartmentRepository {
	return &PgxDepartmentRepository{db: db}
}

var _ portsrepo.DepartmentRepository = (*PgxDepartmentRepository)(nil)

func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	query := `
		INSERT INTO departments (department_id, name, head_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		department.DepartmentID,
		department.Name,
		department.HeadID,
		department.CreatedAt,
		department.CreatedBy,
		department.LastUpdatedAt,
		department.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: department name already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save department: %w", err)
	}
	return nil
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query := `
		SELECT department_id, name, head_id, created_at, created_by, last_updated_at, last_updated_by
		FROM departments
		WHERE department_id = $1;
	`
	var d domain.Department
	err := r.db.QueryRow(ctx, query, departmentID).Scan(
		&d.DepartmentID,
		&d.Name,
		&d.HeadID,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.LastUpdatedAt,
		&d.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by ID %s: %w", departmentID, err)
	}
	return &d, nil
}

func (r *PgxDepartmentRepository) FindDepartments(ctx context.Context) ([]domain.Department, error) {
	query := `
		SELECT department_id, name, head_id, created_at, created_by, last_updated_at, last_updated_by
		FROM departments
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := make([]domain.Department, 0)
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(
			&d.DepartmentID,
			&d.Name,
			&d.HeadID,
			&d.CreatedAt,
			&d.CreatedBy,
			&d.LastUpdatedAt,
			&d.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return departments, nil
}

func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	query := `
		UPDATE departments SET name = $2, head_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE department_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		department.DepartmentID,
		department.Name,
		department.HeadID,
		department.LastUpdatedAt,
		department.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: department name already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update department %s: %w", department.DepartmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to delete department %s: %w", departmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDepartmentRepository) CountEmployeesInDepartment(ctx context.Context, departmentID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE department_id = $1 AND is_active;`, departmentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees in department %s: %w", departmentID, err)
	}
	return count, nil
}
