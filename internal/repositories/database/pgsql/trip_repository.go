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

type PgxTripRepository struct {
	db *pgxpool.Pool
}

func newPgxTripRepository(db *pgxpool.Pool) portsrepo.TripRepository {
	return &PgxTripRepository{db: db}
}

var _ portsrepo.TripRepository = (*PgxTripRepository)(nil)

const tripColumns = `
	trip_id, employee_id, destination, purpose, start_date, end_date,
	status, approver_id, rejection_reason,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanTrip(row pgx.Row) (*domain.BusinessTrip, error) {
	var t domain.BusinessTrip
	err := row.Scan(
		&t.TripID,
		&t.EmployeeID,
		&t.Destination,
		&t.Purpose,
		&t.StartDate,
		&t.EndDate,
		&t.Status,
		&t.ApproverID,
		&t.RejectionReason,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTrip stores the trip with its events and participants in one
// transaction.
func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.BusinessTrip) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tripQuery := `
		INSERT INTO business_trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, tripQuery,
		trip.TripID,
		trip.EmployeeID,
		trip.Destination,
		trip.Purpose,
		trip.StartDate,
		trip.EndDate,
		trip.Status,
		trip.ApproverID,
		trip.RejectionReason,
		trip.CreatedAt,
		trip.CreatedBy,
		trip.LastUpdatedAt,
		trip.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save business trip: %w", err)
	}

	for _, ev := range trip.Events {
		_, err = tx.Exec(ctx,
			`INSERT INTO business_trip_events (event_id, trip_id, name, date) VALUES ($1, $2, $3, $4);`,
			ev.EventID, ev.TripID, ev.Name, ev.Date,
		)
		if err != nil {
			return fmt.Errorf("failed to save trip event: %w", err)
		}
	}

	for _, participantID := range trip.Participants {
		_, err = tx.Exec(ctx,
			`INSERT INTO business_trip_participants (trip_id, employee_id) VALUES ($1, $2);`,
			trip.TripID, participantID,
		)
		if err != nil {
			return fmt.Errorf("failed to save trip participant: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit business trip %s: %w", trip.TripID, err)
	}
	return nil
}

func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.BusinessTrip, error) {
	query := `SELECT ` + tripColumns + ` FROM business_trips WHERE trip_id = $1;`
	trip, err := scanTrip(r.db.QueryRow(ctx, query, tripID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business trip by ID %s: %w", tripID, err)
	}

	if err := r.loadTripDetails(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (r *PgxTripRepository) loadTripDetails(ctx context.Context, trip *domain.BusinessTrip) error {
	eventRows, err := r.db.Query(ctx,
		`SELECT event_id, trip_id, name, date FROM business_trip_events WHERE trip_id = $1 ORDER BY date;`,
		trip.TripID,
	)
	if err != nil {
		return fmt.Errorf("failed to query trip events: %w", err)
	}
	defer eventRows.Close()

	for eventRows.Next() {
		var ev domain.TripEvent
		if err := eventRows.Scan(&ev.EventID, &ev.TripID, &ev.Name, &ev.Date); err != nil {
			return fmt.Errorf("failed to scan trip event row: %w", err)
		}
		trip.Events = append(trip.Events, ev)
	}
	if err := eventRows.Err(); err != nil {
		return fmt.Errorf("error iterating trip event rows: %w", err)
	}

	participantRows, err := r.db.Query(ctx,
		`SELECT employee_id FROM business_trip_participants WHERE trip_id = $1;`,
		trip.TripID,
	)
	if err != nil {
		return fmt.Errorf("failed to query trip participants: %w", err)
	}
	defer participantRows.Close()

	for participantRows.Next() {
		var employeeID string
		if err := participantRows.Scan(&employeeID); err != nil {
			return fmt.Errorf("failed to scan trip participant row: %w", err)
		}
		trip.Participants = append(trip.Participants, employeeID)
	}
	if err := participantRows.Err(); err != nil {
		return fmt.Errorf("error iterating trip participant rows: %w", err)
	}
	return nil
}

// ListTrips pages trips newest first. Events and participants are not loaded
// for list rows; FindTripByID returns the full trip.
func (r *PgxTripRepository) ListTrips(ctx context.Context, employeeIDs []string, limit int, nextToken *string) ([]domain.BusinessTrip, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + tripColumns + ` FROM business_trips`
	orderByClause := `ORDER BY created_at DESC, trip_id DESC`

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
		clauses = append(clauses, `(created_at, trip_id) < ($`+strconv.Itoa(len(args)-1)+`, $`+strconv.Itoa(len(args))+`)`)
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
		return nil, nil, fmt.Errorf("failed to query business trips: %w", err)
	}
	defer rows.Close()

	trips := make([]domain.BusinessTrip, 0, fetchLimit)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan business trip row: %w", err)
		}
		trips = append(trips, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating business trip rows: %w", err)
	}

	var nextTokenVal *string
	if len(trips) > limit {
		trips = trips[:limit]
		last := trips[len(trips)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TripID)
		nextTokenVal = &token
	}
	return trips, nextTokenVal, nil
}

// UpdateTripStatus transitions a PENDING trip, guarded against concurrent
// transitions.
func (r *PgxTripRepository) UpdateTripStatus(ctx context.Context, tripID string, status domain.RequestStatus, actorID string, reason *string, at time.Time) error {
	query := `
		UPDATE business_trips
		SET status = $2, approver_id = $3, rejection_reason = $4, last_updated_at = $5, last_updated_by = $3
		WHERE trip_id = $1 AND status = 'PENDING';
	`
	tag, err := r.db.Exec(ctx, query, tripID, status, actorID, reason, at)
	if err != nil {
		return fmt.Errorf("failed to update business trip %s: %w", tripID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: trip is no longer pending", apperrors.ErrConflict)
	}
	return nil
}
