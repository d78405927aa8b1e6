package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnnualLeaveTypeName is the literal leave-type name that carries the legacy
// balance semantics: submissions are balance-checked against it and approvals
// deduct from the stored balance.
const AnnualLeaveTypeName = "Annual Leave"

// LeavePolarity indicates whether approved requests of a leave type add to or
// subtract from an employee's balance.
type LeavePolarity string

const (
	PolarityAddition    LeavePolarity = "ADDITION"
	PolaritySubtraction LeavePolarity = "SUBTRACTION"
)

// LeaveType is a category of leave, e.g. "Annual Leave" or "Overtime Credit".
type LeaveType struct {
	LeaveTypeID string          `json:"leaveTypeID"`
	Name        string          `json:"name"`
	Polarity    LeavePolarity   `json:"polarity"`
	DayValue    decimal.Decimal `json:"dayValue"` // days added per approved use, for ADDITION types
	AuditFields
}

// IsAnnualLeave reports whether the type carries the legacy "Annual Leave"
// balance semantics.
func (t LeaveType) IsAnnualLeave() bool {
	return t.Name == AnnualLeaveTypeName
}

// LeaveRequest is an employee's request for a date range of leave.
type LeaveRequest struct {
	LeaveRequestID  string          `json:"leaveRequestID"`
	EmployeeID      string          `json:"employeeID"`
	LeaveTypeID     string          `json:"leaveTypeID"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	DaysRequested   decimal.Decimal `json:"daysRequested"` // business days in range
	Reason          string          `json:"reason"`
	Status          RequestStatus   `json:"status"`
	ApproverID      *string         `json:"approverID,omitempty"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
	AuditFields
}

// Overlaps reports whether the request's date range intersects [start, end].
func (r LeaveRequest) Overlaps(start, end time.Time) bool {
	return !r.StartDate.After(end) && !r.EndDate.Before(start)
}
