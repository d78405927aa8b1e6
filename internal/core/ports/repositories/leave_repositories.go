package repositories

import (
	"context"
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LeaveTypeRepository defines persistence operations for leave types.
type LeaveTypeRepository interface {
	SaveLeaveType(ctx context.Context, leaveType domain.LeaveType) error
	FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error)
	FindLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
	UpdateLeaveType(ctx context.Context, leaveType domain.LeaveType) error
	DeleteLeaveType(ctx context.Context, leaveTypeID string) error
}

// LeaveRequestRepository defines persistence operations for leave requests.
type LeaveRequestRepository interface {
	SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) error
	FindLeaveRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error)

	// FindOverlapping returns PENDING and APPROVED requests of the employee
	// whose date range intersects [start, end].
	FindOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]domain.LeaveRequest, error)

	// ListLeaveRequests pages over requests newest first. employeeIDs narrows
	// the result to the given employees; nil means all employees.
	ListLeaveRequests(ctx context.Context, employeeIDs []string, limit int, nextToken *string) ([]domain.LeaveRequest, *string, error)

	// FindApprovedByEmployee returns all APPROVED requests of the employee,
	// used by the balance reporting aggregation.
	FindApprovedByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)

	// ApproveLeaveRequest transitions the request to APPROVED and, when
	// balanceDelta is non-nil, applies it to the employee's stored balance in
	// the same transaction. The status update is guarded on the request still
	// being PENDING; a lost race returns apperrors.ErrConflict.
	ApproveLeaveRequest(ctx context.Context, requestID string, employeeID string, approverID string, balanceDelta *decimal.Decimal, at time.Time) error

	// RejectLeaveRequest transitions the request to REJECTED with the given
	// reason, guarded the same way as ApproveLeaveRequest.
	RejectLeaveRequest(ctx context.Context, requestID string, approverID string, reason string, at time.Time) error
}
