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

type PgxLeaveTypeRepository struct {
	db *pgxpool.Pool
}

func newPgxLeaveTypeRepository(db *pgxpool.Pool) portsrepo.LeaveTypeRepository {
	return &PgxLeaveTypeRepository{db: db}
}

var _ portsrepo.LeaveTypeRepository = (*PgxLeaveTypeRepository)(nil)

func (r *PgxLeaveTypeRepository) SaveLeaveType(ctx context.Context, leaveType domain.LeaveType) error {
	query := `
		INSERT INTO leave_types (leave_type_id, name, polarity, day_value, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		leaveType.LeaveTypeID,
		leaveType.Name,
		leaveType.Polarity,
		leaveType.DayValue,
		leaveType.CreatedAt,
		leaveType.CreatedBy,
		leaveType.LastUpdatedAt,
		leaveType.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: leave type name already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save leave type: %w", err)
	}
	return nil
}

func (r *PgxLeaveTypeRepository) FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error) {
	query := `
		SELECT leave_type_id, name, polarity, day_value, created_at, created_by, last_updated_at, last_updated_by
		FROM leave_types
		WHERE leave_type_id = $1;
	`
	var lt domain.LeaveType
	err := r.db.QueryRow(ctx, query, leaveTypeID).Scan(
		&lt.LeaveTypeID,
		&lt.Name,
		&lt.Polarity,
		&lt.DayValue,
		&lt.CreatedAt,
		&lt.CreatedBy,
		&lt.LastUpdatedAt,
		&lt.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave type by ID %s: %w", leaveTypeID, err)
	}
	return &lt, nil
}

func (r *PgxLeaveTypeRepository) FindLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	query := `
		SELECT leave_type_id, name, polarity, day_value, created_at, created_by, last_updated_at, last_updated_by
		FROM leave_types
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	leaveTypes := make([]domain.LeaveType, 0)
	for rows.Next() {
		var lt domain.LeaveType
		if err := rows.Scan(
			&lt.LeaveTypeID,
			&lt.Name,
			&lt.Polarity,
			&lt.DayValue,
			&lt.CreatedAt,
			&lt.CreatedBy,
			&lt.LastUpdatedAt,
			&lt.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave type row: %w", err)
		}
		leaveTypes = append(leaveTypes, lt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave type rows: %w", err)
	}
	return leaveTypes, nil
}

func (r *PgxLeaveTypeRepository) UpdateLeaveType(ctx context.Context, leaveType domain.LeaveType) error {
	query := `
		UPDATE leave_types SET name = $2, polarity = $3, day_value = $4, last_updated_at = $5, last_updated_by = $6
		WHERE leave_type_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		leaveType.LeaveTypeID,
		leaveType.Name,
		leaveType.Polarity,
		leaveType.DayValue,
		leaveType.LastUpdatedAt,
		leaveType.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: leave type name already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update leave type %s: %w", leaveType.LeaveTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLeaveTypeRepository) DeleteLeaveType(ctx context.Context, leaveTypeID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM leave_types WHERE leave_type_id = $1;`, leaveTypeID)
	if err != nil {
		return fmt.Errorf("failed to delete leave type %s: %w", leaveTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
