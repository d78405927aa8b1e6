package dto

import (
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLeaveTypeRequest carries the fields needed to create a leave type.
type CreateLeaveTypeRequest struct {
	Name     string          `json:"name" binding:"required"`
	Polarity string          `json:"polarity" binding:"required,oneof=ADDITION SUBTRACTION"`
	DayValue decimal.Decimal `json:"dayValue"`
}

// UpdateLeaveTypeRequest carries the updatable fields of a leave type.
type UpdateLeaveTypeRequest struct {
	Name     *string          `json:"name"`
	Polarity *string          `json:"polarity" binding:"omitempty,oneof=ADDITION SUBTRACTION"`
	DayValue *decimal.Decimal `json:"dayValue"`
}

// LeaveTypeResponse is the API representation of a leave type.
type LeaveTypeResponse struct {
	LeaveTypeID string          `json:"leaveTypeID"`
	Name        string          `json:"name"`
	Polarity    string          `json:"polarity"`
	DayValue    decimal.Decimal `json:"dayValue"`
}

// ListLeaveTypesResponse wraps the list of leave types.
type ListLeaveTypesResponse struct {
	LeaveTypes []LeaveTypeResponse `json:"leaveTypes"`
}

// ToLeaveTypeResponse converts a domain.LeaveType.
func ToLeaveTypeResponse(t *domain.LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		LeaveTypeID: t.LeaveTypeID,
		Name:        t.Name,
		Polarity:    string(t.Polarity),
		DayValue:    t.DayValue,
	}
}

// ToListLeaveTypesResponse converts a slice of domain.LeaveType.
func ToListLeaveTypesResponse(leaveTypes []domain.LeaveType) ListLeaveTypesResponse {
	out := make([]LeaveTypeResponse, len(leaveTypes))
	for i := range leaveTypes {
		out[i] = ToLeaveTypeResponse(&leaveTypes[i])
	}
	return ListLeaveTypesResponse{LeaveTypes: out}
}

// CreateLeaveRequestRequest carries a leave request submission.
type CreateLeaveRequestRequest struct {
	LeaveTypeID string `json:"leaveTypeID" binding:"required"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Reason      string `json:"reason"`
}

// RejectRequestRequest carries a rejection with its mandatory reason.
type RejectRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListLeaveRequestsParams defines query parameters for listing leave requests.
type ListLeaveRequestsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// LeaveRequestResponse is the API representation of a leave request.
type LeaveRequestResponse struct {
	LeaveRequestID  string          `json:"leaveRequestID"`
	EmployeeID      string          `json:"employeeID"`
	LeaveTypeID     string          `json:"leaveTypeID"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	DaysRequested   decimal.Decimal `json:"daysRequested"`
	Reason          string          `json:"reason,omitempty"`
	Status          string          `json:"status"`
	ApproverID      *string         `json:"approverID,omitempty"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListLeaveRequestsResponse wraps a page of leave requests.
type ListLeaveRequestsResponse struct {
	LeaveRequests []LeaveRequestResponse `json:"leaveRequests"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToLeaveRequestResponse converts a domain.LeaveRequest.
func ToLeaveRequestResponse(r *domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		LeaveRequestID:  r.LeaveRequestID,
		EmployeeID:      r.EmployeeID,
		LeaveTypeID:     r.LeaveTypeID,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		DaysRequested:   r.DaysRequested,
		Reason:          r.Reason,
		Status:          string(r.Status),
		ApproverID:      r.ApproverID,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
	}
}

// ToListLeaveRequestsResponse converts a page of domain.LeaveRequest.
func ToListLeaveRequestsResponse(requests []domain.LeaveRequest, nextToken *string) ListLeaveRequestsResponse {
	out := make([]LeaveRequestResponse, len(requests))
	for i := range requests {
		out[i] = ToLeaveRequestResponse(&requests[i])
	}
	return ListLeaveRequestsResponse{LeaveRequests: out, NextToken: nextToken}
}
