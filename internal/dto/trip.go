package dto

import (
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
)

// TripEventRequest is one scheduled item within a trip submission.
type TripEventRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// CreateTripRequest carries a business-trip submission.
type CreateTripRequest struct {
	Destination  string             `json:"destination" binding:"required"`
	Purpose      string             `json:"purpose" binding:"required"`
	StartDate    string             `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      string             `json:"endDate" binding:"required,datetime=2006-01-02"`
	Events       []TripEventRequest `json:"events" binding:"dive"`
	Participants []string           `json:"participants"`
}

// TripEventResponse is the API representation of a trip event.
type TripEventResponse struct {
	EventID string `json:"eventID"`
	Name    string `json:"name"`
	Date    string `json:"date"`
}

// TripResponse is the API representation of a business trip.
type TripResponse struct {
	TripID          string              `json:"tripID"`
	EmployeeID      string              `json:"employeeID"`
	Destination     string              `json:"destination"`
	Purpose         string              `json:"purpose"`
	StartDate       string              `json:"startDate"`
	EndDate         string              `json:"endDate"`
	Status          string              `json:"status"`
	ApproverID      *string             `json:"approverID,omitempty"`
	RejectionReason *string             `json:"rejectionReason,omitempty"`
	Events          []TripEventResponse `json:"events,omitempty"`
	Participants    []string            `json:"participants,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// ListTripsResponse wraps a page of business trips.
type ListTripsResponse struct {
	Trips     []TripResponse `json:"trips"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToTripResponse converts a domain.BusinessTrip.
func ToTripResponse(t *domain.BusinessTrip) TripResponse {
	events := make([]TripEventResponse, len(t.Events))
	for i, e := range t.Events {
		events[i] = TripEventResponse{
			EventID: e.EventID,
			Name:    e.Name,
			Date:    e.Date.Format("2006-01-02"),
		}
	}
	return TripResponse{
		TripID:          t.TripID,
		EmployeeID:      t.EmployeeID,
		Destination:     t.Destination,
		Purpose:         t.Purpose,
		StartDate:       t.StartDate.Format("2006-01-02"),
		EndDate:         t.EndDate.Format("2006-01-02"),
		Status:          string(t.Status),
		ApproverID:      t.ApproverID,
		RejectionReason: t.RejectionReason,
		Events:          events,
		Participants:    t.Participants,
		CreatedAt:       t.CreatedAt,
	}
}

// ToListTripsResponse converts a page of domain.BusinessTrip.
func ToListTripsResponse(trips []domain.BusinessTrip, nextToken *string) ListTripsResponse {
	out := make([]TripResponse, len(trips))
	for i := range trips {
		out[i] = ToTripResponse(&trips[i])
	}
	return ListTripsResponse{Trips: out, NextToken: nextToken}
}
