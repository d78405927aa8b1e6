package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/google/uuid"
)

type tripService struct {
	tripRepo     portsrepo.TripRepository
	employeeRepo portsrepo.EmployeeRepository
}

// NewTripService creates a new business-trip service.
func NewTripService(tripRepo portsrepo.TripRepository, employeeRepo portsrepo.EmployeeRepository) portssvc.TripSvcFacade {
	return &tripService{tripRepo: tripRepo, employeeRepo: employeeRepo}
}

var _ portssvc.TripSvcFacade = (*tripService)(nil)

func (s *tripService) SubmitTrip(ctx context.Context, employeeID string, req dto.CreateTripRequest) (*domain.BusinessTrip, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", apperrors.ErrValidation)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEndBeforeStart)
	}

	now := time.Now()
	tripID := uuid.NewString()

	events := make([]domain.TripEvent, 0, len(req.Events))
	for _, ev := range req.Events {
		eventDate, err := time.Parse(dateLayout, ev.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid event date", apperrors.ErrValidation)
		}
		if eventDate.Before(startDate) || eventDate.After(endDate) {
			return nil, fmt.Errorf("%w: event %q falls outside the trip range", apperrors.ErrValidation, ev.Name)
		}
		events = append(events, domain.TripEvent{
			EventID: uuid.NewString(),
			TripID:  tripID,
			Name:    ev.Name,
			Date:    eventDate,
		})
	}

	for _, participantID := range req.Participants {
		if _, err := s.employeeRepo.FindEmployeeByID(ctx, participantID); err != nil {
			return nil, fmt.Errorf("failed to find participant %s: %w", participantID, err)
		}
	}

	trip := domain.BusinessTrip{
		TripID:       tripID,
		EmployeeID:   employeeID,
		Destination:  req.Destination,
		Purpose:      req.Purpose,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       domain.StatusPending,
		Events:       events,
		Participants: req.Participants,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     employeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: employeeID,
		},
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to save business trip: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Business trip submitted",
		slog.String("trip_id", tripID),
		slog.String("employee_id", employeeID),
	)
	return &trip, nil
}

func (s *tripService) GetTripByID(ctx context.Context, tripID string, requester portssvc.Actor) (*domain.BusinessTrip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to find business trip %s: %w", tripID, err)
	}

	allowed, err := canViewRequest(ctx, s.employeeRepo, requester, trip.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	return trip, nil
}

func (s *tripService) ListTrips(ctx context.Context, requester portssvc.Actor, params dto.ListLeaveRequestsParams) ([]domain.BusinessTrip, *string, error) {
	employeeIDs, err := visibleEmployeeIDs(ctx, s.employeeRepo, requester)
	if err != nil {
		return nil, nil, err
	}

	trips, nextToken, err := s.tripRepo.ListTrips(ctx, employeeIDs, params.Limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list business trips: %w", err)
	}
	return trips, nextToken, nil
}

func (s *tripService) ApproveTrip(ctx context.Context, tripID string, approver portssvc.Actor) (*domain.BusinessTrip, error) {
	return s.transition(ctx, tripID, domain.StatusApproved, approver, nil)
}

func (s *tripService) RejectTrip(ctx context.Context, tripID string, approver portssvc.Actor, reason string) (*domain.BusinessTrip, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
	}
	return s.transition(ctx, tripID, domain.StatusRejected, approver, &reason)
}

// CancelTrip cancels a PENDING trip. Only the requesting employee may
// cancel; approvers use RejectTrip instead.
func (s *tripService) CancelTrip(ctx context.Context, tripID string, actor portssvc.Actor) (*domain.BusinessTrip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to find business trip %s: %w", tripID, err)
	}
	if trip.EmployeeID != actor.EmployeeID {
		return nil, fmt.Errorf("%w: only the requesting employee may cancel a trip", apperrors.ErrForbidden)
	}
	if !trip.Status.CanTransitionTo(domain.StatusCancelled) {
		return nil, fmt.Errorf("%w: trip is %s", apperrors.ErrConflict, trip.Status)
	}

	now := time.Now()
	if err := s.tripRepo.UpdateTripStatus(ctx, tripID, domain.StatusCancelled, actor.EmployeeID, nil, now); err != nil {
		return nil, fmt.Errorf("failed to cancel business trip %s: %w", tripID, err)
	}

	trip.Status = domain.StatusCancelled
	trip.LastUpdatedAt = now
	trip.LastUpdatedBy = actor.EmployeeID

	middleware.GetLoggerFromCtx(ctx).Info("Business trip cancelled",
		slog.String("trip_id", tripID),
		slog.String("employee_id", actor.EmployeeID),
	)
	return trip, nil
}

func (s *tripService) transition(ctx context.Context, tripID string, status domain.RequestStatus, approver portssvc.Actor, reason *string) (*domain.BusinessTrip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to find business trip %s: %w", tripID, err)
	}
	if !trip.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: trip is %s", apperrors.ErrConflict, trip.Status)
	}

	if err := authorizeRequestAction(ctx, s.employeeRepo, approver, trip.EmployeeID); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.tripRepo.UpdateTripStatus(ctx, tripID, status, approver.EmployeeID, reason, now); err != nil {
		return nil, fmt.Errorf("failed to update business trip %s: %w", tripID, err)
	}

	trip.Status = status
	trip.ApproverID = &approver.EmployeeID
	trip.RejectionReason = reason
	trip.LastUpdatedAt = now
	trip.LastUpdatedBy = approver.EmployeeID

	middleware.GetLoggerFromCtx(ctx).Info("Business trip status updated",
		slog.String("trip_id", tripID),
		slog.String("status", string(status)),
		slog.String("approver_id", approver.EmployeeID),
	)
	return trip, nil
}
