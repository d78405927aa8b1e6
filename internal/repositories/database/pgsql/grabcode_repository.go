package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	"github.com/andikarp/hris-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGrabCodeRepository struct {
	db *pgxpool.Pool
}

func newPgxGrabCodeRepository(db *pgxpool.Pool) portsrepo.GrabCodeRepository {
	return &PgxGrabCodeRepository{db: db}
}

var _ portsrepo.GrabCodeRepository = (*PgxGrabCodeRepository)(nil)

const grabCodeColumns = `
	request_id, employee_id, service_id, travel_date, pickup_location,
	destination, purpose, status, approver_id, rejection_reason, code,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanGrabCodeRequest(row pgx.Row) (*domain.GrabCodeRequest, error) {
	var g domain.GrabCodeRequest
	err := row.Scan(
		&g.RequestID,
		&g.EmployeeID,
		&g.ServiceID,
		&g.TravelDate,
		&g.PickupLocation,
		&g.Destination,
		&g.Purpose,
		&g.Status,
		&g.ApproverID,
		&g.RejectionReason,
		&g.Code,
		&g.CreatedAt,
		&g.CreatedBy,
		&g.LastUpdatedAt,
		&g.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PgxGrabCodeRepository) SaveGrabCodeRequest(ctx context.Context, request domain.GrabCodeRequest) error {
	query := `
		INSERT INTO grab_code_requests (` + grabCodeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		request.RequestID,
		request.EmployeeID,
		request.ServiceID,
		request.TravelDate,
		request.PickupLocation,
		request.Destination,
		request.Purpose,
		request.Status,
		request.ApproverID,
		request.RejectionReason,
		request.Code,
		request.CreatedAt,
		request.CreatedBy,
		request.LastUpdatedAt,
		request.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save grab-code request: %w", err)
	}
	return nil
}

func (r *PgxGrabCodeRepository) FindGrabCodeRequestByID(ctx context.Context, requestID string) (*domain.GrabCodeRequest, error) {
	query := `SELECT ` + grabCodeColumns + ` FROM grab_code_requests WHERE request_id = $1;`
	request, err := scanGrabCodeRequest(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find grab-code request by ID %s: %w", requestID, err)
	}
	return request, nil
}

func (r *PgxGrabCodeRepository) ListGrabCodeRequests(ctx context.Context, employeeIDs []string, limit int, nextToken *string) ([]domain.GrabCodeRequest, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + grabCodeColumns + ` FROM grab_code_requests`
	orderByClause := `ORDER BY created_at DESC, request_id DESC`

	clauses := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)

	if employeeIDs != nil {
		args = append(args, employeeIDs)
		clauses = append(clauses, `employee_id = ANY($`+strconv.Itoa(len(args))+`)`)
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastCreatedAt, lastID)
		clauses = append(clauses, `(created_at, request_id) < ($`+strconv.Itoa(len(args)-1)+`, $`+strconv.Itoa(len(args))+`)`)
	}

	query := baseQuery
	for i, clause := range clauses {
		if i == 0 {
			query += ` WHERE ` + clause
		} else {
			query += ` AND ` + clause
		}
	}
	args = append(args, fetchLimit)
	query += ` ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query grab-code requests: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.GrabCodeRequest, 0, fetchLimit)
	for rows.Next() {
		g, err := scanGrabCodeRequest(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan grab-code request row: %w", err)
		}
		requests = append(requests, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating grab-code request rows: %w", err)
	}

	var nextTokenVal *string
	if len(requests) > limit {
		requests = requests[:limit]
		last := requests[len(requests)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.RequestID)
		nextTokenVal = &token
	}
	return requests, nextTokenVal, nil
}

// UpdateGrabCodeStatus transitions a PENDING request, guarded against
// concurrent transitions. The voucher code is stored when approving.
func (r *PgxGrabCodeRepository) UpdateGrabCodeStatus(ctx context.Context, requestID string, status domain.RequestStatus, actorID string, reason *string, code *string, at time.Time) error {
	query := `
		UPDATE grab_code_requests
		SET status = $2, approver_id = $3, rejection_reason = $4, code = $5, last_updated_at = $6, last_updated_by = $3
		WHERE request_id = $1 AND status = 'PENDING';
	`
	tag, err := r.db.Exec(ctx, query, requestID, status, actorID, reason, code, at)
	if err != nil {
		return fmt.Errorf("failed to update grab-code request %s: %w", requestID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: request is no longer pending", apperrors.ErrConflict)
	}
	return nil
}
