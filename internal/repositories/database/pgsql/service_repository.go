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

type PgxServiceRepository struct {
	db *pgxpool.Pool
}

func newPgxServiceRepository(db *pgxpool.Pool) portsrepo.ServiceRepository {
	return &PgxServiceRepository{db: db}
}

var _ portsrepo.ServiceRepository = (*PgxServiceRepository)(nil)

func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	query := `
		INSERT INTO services (service_id, name, provider, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		service.ServiceID,
		service.Name,
		service.Provider,
		service.IsActive,
		service.CreatedAt,
		service.CreatedBy,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: service name already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := `
		SELECT service_id, name, provider, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM services
		WHERE service_id = $1;
	`
	var s domain.Service
	err := r.db.QueryRow(ctx, query, serviceID).Scan(
		&s.ServiceID,
		&s.Name,
		&s.Provider,
		&s.IsActive,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID %s: %w", serviceID, err)
	}
	return &s, nil
}

func (r *PgxServiceRepository) FindServices(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	query := `
		SELECT service_id, name, provider, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM services
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(
			&s.ServiceID,
			&s.Name,
			&s.Provider,
			&s.IsActive,
			&s.CreatedAt,
			&s.CreatedBy,
			&s.LastUpdatedAt,
			&s.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", err)
	}
	return services, nil
}

func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	query := `
		UPDATE services SET name = $2, provider = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE service_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		service.ServiceID,
		service.Name,
		service.Provider,
		service.IsActive,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: service name already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update service %s: %w", service.ServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxServiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE service_id = $1;`, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
