package dto

import (
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
)

// CreateGrabCodeRequestRequest carries a grab-code request submission.
type CreateGrabCodeRequestRequest struct {
	ServiceID      string `json:"serviceID" binding:"required"`
	TravelDate     string `json:"travelDate" binding:"required,datetime=2006-01-02"`
	PickupLocation string `json:"pickupLocation" binding:"required"`
	Destination    string `json:"destination" binding:"required"`
	Purpose        string `json:"purpose" binding:"required"`
}

// GrabCodeRequestResponse is the API representation of a grab-code request.
type GrabCodeRequestResponse struct {
	RequestID       string    `json:"requestID"`
	EmployeeID      string    `json:"employeeID"`
	ServiceID       string    `json:"serviceID"`
	TravelDate      string    `json:"travelDate"`
	PickupLocation  string    `json:"pickupLocation"`
	Destination     string    `json:"destination"`
	Purpose         string    `json:"purpose"`
	Status          string    `json:"status"`
	ApproverID      *string   `json:"approverID,omitempty"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	Code            *string   `json:"code,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListGrabCodeRequestsResponse wraps a page of grab-code requests.
type ListGrabCodeRequestsResponse struct {
	Requests  []GrabCodeRequestResponse `json:"requests"`
	NextToken *string                   `json:"nextToken,omitempty"`
}

// ToGrabCodeRequestResponse converts a domain.GrabCodeRequest.
func ToGrabCodeRequestResponse(r *domain.GrabCodeRequest) GrabCodeRequestResponse {
	return GrabCodeRequestResponse{
		RequestID:       r.RequestID,
		EmployeeID:      r.EmployeeID,
		ServiceID:       r.ServiceID,
		TravelDate:      r.TravelDate.Format("2006-01-02"),
		PickupLocation:  r.PickupLocation,
		Destination:     r.Destination,
		Purpose:         r.Purpose,
		Status:          string(r.Status),
		ApproverID:      r.ApproverID,
		RejectionReason: r.RejectionReason,
		Code:            r.Code,
		CreatedAt:       r.CreatedAt,
	}
}

// ToListGrabCodeRequestsResponse converts a page of domain.GrabCodeRequest.
func ToListGrabCodeRequestsResponse(requests []domain.GrabCodeRequest, nextToken *string) ListGrabCodeRequestsResponse {
	out := make([]GrabCodeRequestResponse, len(requests))
	for i := range requests {
		out[i] = ToGrabCodeRequestResponse(&requests[i])
	}
	return ListGrabCodeRequestsResponse{Requests: out, NextToken: nextToken}
}
