package services

import (
	"context"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/andikarp/hris-backend/internal/dto"
)

// LeaveSvcFacade defines leave-type management and the leave-request workflow.
type LeaveSvcFacade interface {
	CreateLeaveType(ctx context.Context, req dto.CreateLeaveTypeRequest, creatorID string) (*domain.LeaveType, error)
	GetLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
	UpdateLeaveType(ctx context.Context, leaveTypeID string, req dto.UpdateLeaveTypeRequest, updaterID string) (*domain.LeaveType, error)
	DeleteLeaveType(ctx context.Context, leaveTypeID string) error

	// SubmitLeaveRequest validates and creates a leave request for the
	// employee. Validation failures return apperrors.ErrValidation; an
	// overlapping PENDING/APPROVED request returns apperrors.ErrConflict.
	SubmitLeaveRequest(ctx context.Context, employeeID string, req dto.CreateLeaveRequestRequest) (*domain.LeaveRequest, error)
	GetLeaveRequestByID(ctx context.Context, requestID string, requester Actor) (*domain.LeaveRequest, error)

	// ListLeaveRequests pages over the requests the actor may see: their own
	// for employees, their subordinates' for managers, all for admin/HR.
	ListLeaveRequests(ctx context.Context, requester Actor, params dto.ListLeaveRequestsParams) ([]domain.LeaveRequest, *string, error)

	// ApproveLeaveRequest transitions a PENDING request to APPROVED and
	// applies the leave type's balance effect.
	ApproveLeaveRequest(ctx context.Context, requestID string, approver Actor) (*domain.LeaveRequest, error)

	// RejectLeaveRequest transitions a PENDING request to REJECTED. The
	// reason must be at least 10 characters.
	RejectLeaveRequest(ctx context.Context, requestID string, approver Actor, reason string) (*domain.LeaveRequest, error)
}

// Actor identifies the authenticated caller of a workflow operation.
type Actor struct {
	EmployeeID string
	Role       domain.Role
}
