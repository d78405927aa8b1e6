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

type PgxHolidayRepository struct {
	db *pgxpool.Pool
}

func newPgxHolidayRepository(db *pgxpool.Pool) portsrepo.HolidayRepository {
	return &PgxHolidayRepository{db: db}
}

var _ portsrepo.HolidayRepository = (*PgxHolidayRepository)(nil)

func (r *PgxHolidayRepository) SaveHoliday(ctx context.Context, holiday domain.Holiday) error {
	query := `
		INSERT INTO holidays (holiday_id, name, date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		holiday.HolidayID,
		holiday.Name,
		holiday.Date,
		holiday.CreatedAt,
		holiday.CreatedBy,
		holiday.LastUpdatedAt,
		holiday.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a holiday already exists on that date", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save holiday: %w", err)
	}
	return nil
}

func (r *PgxHolidayRepository) FindHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error) {
	query := `
		SELECT holiday_id, name, date, created_at, created_by, last_updated_at, last_updated_by
		FROM holidays
		WHERE holiday_id = $1;
	`
	var h domain.Holiday
	err := r.db.QueryRow(ctx, query, holidayID).Scan(
		&h.HolidayID,
		&h.Name,
		&h.Date,
		&h.CreatedAt,
		&h.CreatedBy,
		&h.LastUpdatedAt,
		&h.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find holiday by ID %s: %w", holidayID, err)
	}
	return &h, nil
}

func (r *PgxHolidayRepository) FindHolidaysByYear(ctx context.Context, year int) ([]domain.Holiday, error) {
	query := `
		SELECT holiday_id, name, date, created_at, created_by, last_updated_at, last_updated_by
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date;
	`
	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays for %d: %w", year, err)
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(
			&h.HolidayID,
			&h.Name,
			&h.Date,
			&h.CreatedAt,
			&h.CreatedBy,
			&h.LastUpdatedAt,
			&h.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holiday rows: %w", err)
	}
	return holidays, nil
}

func (r *PgxHolidayRepository) UpdateHoliday(ctx context.Context, holiday domain.Holiday) error {
	query := `
		UPDATE holidays SET name = $2, date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE holiday_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		holiday.HolidayID,
		holiday.Name,
		holiday.Date,
		holiday.LastUpdatedAt,
		holiday.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a holiday already exists on that date", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update holiday %s: %w", holiday.HolidayID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxHolidayRepository) DeleteHoliday(ctx context.Context, holidayID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM holidays WHERE holiday_id = $1;`, holidayID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday %s: %w", holidayID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
