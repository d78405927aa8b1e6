package services

import (
	"context"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/andikarp/hris-backend/internal/dto"
)

// TripSvcFacade defines the business-trip request workflow.
type TripSvcFacade interface {
	SubmitTrip(ctx context.Context, employeeID string, req dto.CreateTripRequest) (*domain.BusinessTrip, error)
	GetTripByID(ctx context.Context, tripID string, requester Actor) (*domain.BusinessTrip, error)
	ListTrips(ctx context.Context, requester Actor, params dto.ListLeaveRequestsParams) ([]domain.BusinessTrip, *string, error)
	ApproveTrip(ctx context.Context, tripID string, approver Actor) (*domain.BusinessTrip, error)
	RejectTrip(ctx context.Context, tripID string, approver Actor, reason string) (*domain.BusinessTrip, error)

	// CancelTrip cancels a PENDING trip; only the requesting employee may
	// cancel.
	CancelTrip(ctx context.Context, tripID string, actor Actor) (*domain.BusinessTrip, error)
}

// GrabCodeSvcFacade defines the grab-code request workflow.
type GrabCodeSvcFacade interface {
	SubmitGrabCodeRequest(ctx context.Context, employeeID string, req dto.CreateGrabCodeRequestRequest) (*domain.GrabCodeRequest, error)
	GetGrabCodeRequestByID(ctx context.Context, requestID string, requester Actor) (*domain.GrabCodeRequest, error)
	ListGrabCodeRequests(ctx context.Context, requester Actor, params dto.ListLeaveRequestsParams) ([]domain.GrabCodeRequest, *string, error)

	// ApproveGrabCodeRequest transitions the request to APPROVED and stores a
	// freshly generated code on it.
	ApproveGrabCodeRequest(ctx context.Context, requestID string, approver Actor) (*domain.GrabCodeRequest, error)
	RejectGrabCodeRequest(ctx context.Context, requestID string, approver Actor, reason string) (*domain.GrabCodeRequest, error)
}
