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
	"github.com/shopspring/decimal"
)

type PgxLeaveRequestRepository struct {
	db *pgxpool.Pool
}

func newPgxLeaveRequestRepository(db *pgxpool.Pool) portsrepo.LeaveRequestRepository {
	return &PgxLeaveRequestRepository{db: db}
}

var _ portsrepo.LeaveRequestRepository = (*PgxLeaveRequestRepository)(nil)

const leaveRequestColumns = `
	leave_request_id, employee_id, leave_type_id, start_date, end_date,
	days_requested, reason, status, approver_id, rejection_reason,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanLeaveRequest(row pgx.Row) (*domain.LeaveRequest, error) {
	var lr domain.LeaveRequest
	err := row.Scan(
		&lr.LeaveRequestID,
		&lr.EmployeeID,
		&lr.LeaveTypeID,
		&lr.StartDate,
		&lr.EndDate,
		&lr.DaysRequested,
		&lr.Reason,
		&lr.Status,
		&lr.ApproverID,
		&lr.RejectionReason,
		&lr.CreatedAt,
		&lr.CreatedBy,
		&lr.LastUpdatedAt,
		&lr.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *PgxLeaveRequestRepository) SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (` + leaveRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		request.LeaveRequestID,
		request.EmployeeID,
		request.LeaveTypeID,
		request.StartDate,
		request.EndDate,
		request.DaysRequested,
		request.Reason,
		request.Status,
		request.ApproverID,
		request.RejectionReason,
		request.CreatedAt,
		request.CreatedBy,
		request.LastUpdatedAt,
		request.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save leave request: %w", err)
	}
	return nil
}

func (r *PgxLeaveRequestRepository) FindLeaveRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE leave_request_id = $1;`
	request, err := scanLeaveRequest(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request by ID %s: %w", requestID, err)
	}
	return request, nil
}

// FindOverlapping returns the employee's PENDING or APPROVED requests whose
// range intersects [start, end].
func (r *PgxLeaveRequestRepository) FindOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]domain.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND status IN ('PENDING', 'APPROVED')
		  AND start_date <= $3
		  AND end_date >= $2;
	`
	rows, err := r.db.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping requests for %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *PgxLeaveRequestRepository) ListLeaveRequests(ctx context.Context, employeeIDs []string, limit int, nextToken *string) ([]domain.LeaveRequest, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + leaveRequestColumns + ` FROM leave_requests`
	orderByClause := `ORDER BY created_at DESC, leave_request_id DESC`

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
		clauses = append(clauses, `(created_at, leave_request_id) < ($`+strconv.Itoa(len(args)-1)+`, $`+strconv.Itoa(len(args))+`)`)
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
		return nil, nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := collectLeaveRequests(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(requests) > limit {
		requests = requests[:limit]
		last := requests[len(requests)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.LeaveRequestID)
		nextTokenVal = &token
	}
	return requests, nextTokenVal, nil
}

func (r *PgxLeaveRequestRepository) FindApprovedByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND status = 'APPROVED'
		ORDER BY start_date;
	`
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved requests for %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]domain.LeaveRequest, error) {
	requests := make([]domain.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, *lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave request rows: %w", err)
	}
	return requests, nil
}

// ApproveLeaveRequest transitions the request to APPROVED and applies the
// balance delta in one transaction. The status update is guarded on PENDING;
// a lost race returns apperrors.ErrConflict and leaves the balance untouched.
func (r *PgxLeaveRequestRepository) ApproveLeaveRequest(ctx context.Context, requestID string, employeeID string, approverID string, balanceDelta *decimal.Decimal, at time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	statusQuery := `
		UPDATE leave_requests
		SET status = 'APPROVED', approver_id = $2, last_updated_at = $3, last_updated_by = $2
		WHERE leave_request_id = $1 AND status = 'PENDING';
	`
	tag, err := tx.Exec(ctx, statusQuery, requestID, approverID, at)
	if err != nil {
		return fmt.Errorf("failed to approve leave request %s: %w", requestID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: request is no longer pending", apperrors.ErrConflict)
	}

	if balanceDelta != nil {
		balanceQuery := `
			UPDATE employees
			SET leave_balance = leave_balance + $2, last_updated_at = $3, last_updated_by = $4
			WHERE employee_id = $1;
		`
		tag, err := tx.Exec(ctx, balanceQuery, employeeID, *balanceDelta, at, approverID)
		if err != nil {
			return fmt.Errorf("failed to apply balance delta for %s: %w", employeeID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit approval of %s: %w", requestID, err)
	}
	return nil
}

// RejectLeaveRequest transitions the request to REJECTED, guarded on PENDING.
func (r *PgxLeaveRequestRepository) RejectLeaveRequest(ctx context.Context, requestID string, approverID string, reason string, at time.Time) error {
	query := `
		UPDATE leave_requests
		SET status = 'REJECTED', approver_id = $2, rejection_reason = $3, last_updated_at = $4, last_updated_by = $2
		WHERE leave_request_id = $1 AND status = 'PENDING';
	`
	tag, err := r.db.Exec(ctx, query, requestID, approverID, reason, at)
	if err != nil {
		return fmt.Errorf("failed to reject leave request %s: %w", requestID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: request is no longer pending", apperrors.ErrConflict)
	}
	return nil
}
