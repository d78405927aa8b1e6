package services

import (
	"context"
	"errors"
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
	"github.com/andikarp/hris-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrStartDateInPast      = errors.New("start date cannot be in the past")
	ErrEndBeforeStart       = errors.New("end date must not be before start date")
	ErrNoBusinessDays       = errors.New("requested range contains no business days")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrOverlappingRequest   = errors.New("an overlapping leave request already exists")
	ErrRejectionReasonShort = errors.New("rejection reason must be at least 10 characters")
)

const minRejectionReasonLen = 10

const dateLayout = "2006-01-02"

// leaveService implements LeaveSvcFacade: leave-type management plus the
// leave-request workflow.
type leaveService struct {
	leaveTypeRepo    portsrepo.LeaveTypeRepository
	leaveRequestRepo portsrepo.LeaveRequestRepository
	employeeRepo     portsrepo.EmployeeRepository
}

// NewLeaveService creates a new leave service.
func NewLeaveService(leaveTypeRepo portsrepo.LeaveTypeRepository, leaveRequestRepo portsrepo.LeaveRequestRepository, employeeRepo portsrepo.EmployeeRepository) portssvc.LeaveSvcFacade {
	return &leaveService{
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
	}
}

var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

func (s *leaveService) CreateLeaveType(ctx context.Context, req dto.CreateLeaveTypeRequest, creatorID string) (*domain.LeaveType, error) {
	now := time.Now()
	leaveType := domain.LeaveType{
		LeaveTypeID: uuid.NewString(),
		Name:        req.Name,
		Polarity:    domain.LeavePolarity(req.Polarity),
		DayValue:    req.DayValue,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.leaveTypeRepo.SaveLeaveType(ctx, leaveType); err != nil {
		return nil, fmt.Errorf("failed to save leave type: %w", err)
	}
	return &leaveType, nil
}

func (s *leaveService) GetLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error) {
	leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave type %s: %w", leaveTypeID, err)
	}
	return leaveType, nil
}

func (s *leaveService) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	leaveTypes, err := s.leaveTypeRepo.FindLeaveTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	return leaveTypes, nil
}

func (s *leaveService) UpdateLeaveType(ctx context.Context, leaveTypeID string, req dto.UpdateLeaveTypeRequest, updaterID string) (*domain.LeaveType, error) {
	leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		leaveType.Name = *req.Name
		updated = true
	}
	if req.Polarity != nil {
		leaveType.Polarity = domain.LeavePolarity(*req.Polarity)
		updated = true
	}
	if req.DayValue != nil {
		leaveType.DayValue = *req.DayValue
		updated = true
	}
	if !updated {
		return leaveType, nil
	}

	leaveType.LastUpdatedAt = time.Now()
	leaveType.LastUpdatedBy = updaterID

	if err := s.leaveTypeRepo.UpdateLeaveType(ctx, *leaveType); err != nil {
		return nil, fmt.Errorf("failed to update leave type %s: %w", leaveTypeID, err)
	}
	return leaveType, nil
}

func (s *leaveService) DeleteLeaveType(ctx context.Context, leaveTypeID string) error {
	if err := s.leaveTypeRepo.DeleteLeaveType(ctx, leaveTypeID); err != nil {
		return fmt.Errorf("failed to delete leave type %s: %w", leaveTypeID, err)
	}
	return nil
}

// SubmitLeaveRequest validates and creates a leave request.
func (s *leaveService) SubmitLeaveRequest(ctx context.Context, employeeID string, req dto.CreateLeaveRequestRequest) (*domain.LeaveRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", apperrors.ErrValidation)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if startDate.Before(today) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrStartDateInPast)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEndBeforeStart)
	}

	// Weekday count only; the holiday calendar is deliberately not consulted
	// here.
	businessDays := utils.BusinessDaysBetween(startDate, endDate)
	if businessDays <= 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoBusinessDays)
	}
	daysRequested := decimal.NewFromInt(int64(businessDays))

	leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, req.LeaveTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave type %s: %w", req.LeaveTypeID, err)
	}

	if leaveType.IsAnnualLeave() {
		employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
		}
		if employee.LeaveBalance.LessThan(daysRequested) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInsufficientBalance)
		}
	}

	overlapping, err := s.leaveRequestRepo.FindOverlapping(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check for overlapping requests: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrOverlappingRequest)
	}

	request := domain.LeaveRequest{
		LeaveRequestID: uuid.NewString(),
		EmployeeID:     employeeID,
		LeaveTypeID:    req.LeaveTypeID,
		StartDate:      startDate,
		EndDate:        endDate,
		DaysRequested:  daysRequested,
		Reason:         req.Reason,
		Status:         domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     employeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: employeeID,
		},
	}

	if err := s.leaveRequestRepo.SaveLeaveRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to save leave request: %w", err)
	}

	logger.Info("Leave request submitted",
		slog.String("leave_request_id", request.LeaveRequestID),
		slog.String("employee_id", employeeID),
		slog.Int("days_requested", businessDays),
	)
	return &request, nil
}

func (s *leaveService) GetLeaveRequestByID(ctx context.Context, requestID string, requester portssvc.Actor) (*domain.LeaveRequest, error) {
	request, err := s.leaveRequestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave request %s: %w", requestID, err)
	}

	allowed, err := canViewRequest(ctx, s.employeeRepo, requester, request.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	return request, nil
}

func (s *leaveService) ListLeaveRequests(ctx context.Context, requester portssvc.Actor, params dto.ListLeaveRequestsParams) ([]domain.LeaveRequest, *string, error) {
	employeeIDs, err := visibleEmployeeIDs(ctx, s.employeeRepo, requester)
	if err != nil {
		return nil, nil, err
	}

	requests, nextToken, err := s.leaveRequestRepo.ListLeaveRequests(ctx, employeeIDs, params.Limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nextToken, nil
}

// ApproveLeaveRequest transitions a PENDING request to APPROVED. For the
// legacy "Annual Leave" type the requested days are deducted from the stored
// balance at this moment; ADDITION-polarity types add their day value. The
// status update and balance mutation happen in one guarded transaction.
func (s *leaveService) ApproveLeaveRequest(ctx context.Context, requestID string, approver portssvc.Actor) (*domain.LeaveRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.leaveRequestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave request %s: %w", requestID, err)
	}
	if !request.Status.CanTransitionTo(domain.StatusApproved) {
		return nil, fmt.Errorf("%w: request is %s", apperrors.ErrConflict, request.Status)
	}

	if err := authorizeRequestAction(ctx, s.employeeRepo, approver, request.EmployeeID); err != nil {
		return nil, err
	}

	leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, request.LeaveTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave type %s: %w", request.LeaveTypeID, err)
	}

	var balanceDelta *decimal.Decimal
	switch {
	case leaveType.IsAnnualLeave():
		delta := request.DaysRequested.Neg()
		balanceDelta = &delta
	case leaveType.Polarity == domain.PolarityAddition:
		delta := leaveType.DayValue
		balanceDelta = &delta
	}

	now := time.Now()
	if err := s.leaveRequestRepo.ApproveLeaveRequest(ctx, requestID, request.EmployeeID, approver.EmployeeID, balanceDelta, now); err != nil {
		return nil, fmt.Errorf("failed to approve leave request %s: %w", requestID, err)
	}

	request.Status = domain.StatusApproved
	request.ApproverID = &approver.EmployeeID
	request.LastUpdatedAt = now
	request.LastUpdatedBy = approver.EmployeeID

	logger.Info("Leave request approved",
		slog.String("leave_request_id", requestID),
		slog.String("approver_id", approver.EmployeeID),
	)
	return request, nil
}

// RejectLeaveRequest transitions a PENDING request to REJECTED. The reason is
// mandatory and must be at least 10 characters.
func (s *leaveService) RejectLeaveRequest(ctx context.Context, requestID string, approver portssvc.Actor, reason string) (*domain.LeaveRequest, error) {
	if len(strings.TrimSpace(reason)) < minRejectionReasonLen {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrRejectionReasonShort)
	}

	request, err := s.leaveRequestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave request %s: %w", requestID, err)
	}
	if !request.Status.CanTransitionTo(domain.StatusRejected) {
		return nil, fmt.Errorf("%w: request is %s", apperrors.ErrConflict, request.Status)
	}

	if err := authorizeRequestAction(ctx, s.employeeRepo, approver, request.EmployeeID); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.leaveRequestRepo.RejectLeaveRequest(ctx, requestID, approver.EmployeeID, reason, now); err != nil {
		return nil, fmt.Errorf("failed to reject leave request %s: %w", requestID, err)
	}

	request.Status = domain.StatusRejected
	request.ApproverID = &approver.EmployeeID
	request.RejectionReason = &reason
	request.LastUpdatedAt = now
	request.LastUpdatedBy = approver.EmployeeID

	middleware.GetLoggerFromCtx(ctx).Info("Leave request rejected",
		slog.String("leave_request_id", requestID),
		slog.String("approver_id", approver.EmployeeID),
	)
	return request, nil
}
