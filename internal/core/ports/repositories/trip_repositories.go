package repositories

import (
	"context"
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
)

// TripRepository defines persistence operations for business trips. Events
// and participants are saved together with the trip in one transaction.
type TripRepository interface {
	SaveTrip(ctx context.Context, trip domain.BusinessTrip) error
	FindTripByID(ctx context.Context, tripID string) (*domain.BusinessTrip, error)
	ListTrips(ctx context.Context, employeeIDs []string, limit int, nextToken *string) ([]domain.BusinessTrip, *string, error)

	// UpdateTripStatus transitions a PENDING trip to the given status. The
	// update is guarded; a lost race returns apperrors.ErrConflict.
	UpdateTripStatus(ctx context.Context, tripID string, status domain.RequestStatus, actorID string, reason *string, at time.Time) error
}

// GrabCodeRepository defines persistence operations for grab-code requests.
type GrabCodeRepository interface {
	SaveGrabCodeRequest(ctx context.Context, request domain.GrabCodeRequest) error
	FindGrabCodeRequestByID(ctx context.Context, requestID string) (*domain.GrabCodeRequest, error)
	ListGrabCodeRequests(ctx context.Context, employeeIDs []string, limit int, nextToken *string) ([]domain.GrabCodeRequest, *string, error)

	// UpdateGrabCodeStatus transitions a PENDING request; code is stored when
	// approving. Guarded like UpdateTripStatus.
	UpdateGrabCodeStatus(ctx context.Context, requestID string, status domain.RequestStatus, actorID string, reason *string, code *string, at time.Time) error
}
