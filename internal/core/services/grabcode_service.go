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
	"github.com/andikarp/hris-backend/internal/utils"
	"github.com/google/uuid"
)

type grabCodeService struct {
	grabCodeRepo portsrepo.GrabCodeRepository
	serviceRepo  portsrepo.ServiceRepository
	employeeRepo portsrepo.EmployeeRepository
}

// NewGrabCodeService creates a new grab-code request service.
func NewGrabCodeService(grabCodeRepo portsrepo.GrabCodeRepository, serviceRepo portsrepo.ServiceRepository, employeeRepo portsrepo.EmployeeRepository) portssvc.GrabCodeSvcFacade {
	return &grabCodeService{
		grabCodeRepo: grabCodeRepo,
		serviceRepo:  serviceRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.GrabCodeSvcFacade = (*grabCodeService)(nil)

func (s *grabCodeService) SubmitGrabCodeRequest(ctx context.Context, employeeID string, req dto.CreateGrabCodeRequestRequest) (*domain.GrabCodeRequest, error) {
	travelDate, err := time.Parse(dateLayout, req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid travel date", apperrors.ErrValidation)
	}

	service, err := s.serviceRepo.FindServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find service %s: %w", req.ServiceID, err)
	}
	if !service.IsActive {
		return nil, fmt.Errorf("%w: service %s is not active", apperrors.ErrValidation, service.Name)
	}

	now := time.Now()
	request := domain.GrabCodeRequest{
		RequestID:      uuid.NewString(),
		EmployeeID:     employeeID,
		ServiceID:      req.ServiceID,
		TravelDate:     travelDate,
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
		Purpose:        req.Purpose,
		Status:         domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     employeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: employeeID,
		},
	}

	if err := s.grabCodeRepo.SaveGrabCodeRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to save grab-code request: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Grab-code request submitted",
		slog.String("request_id", request.RequestID),
		slog.String("employee_id", employeeID),
	)
	return &request, nil
}

func (s *grabCodeService) GetGrabCodeRequestByID(ctx context.Context, requestID string, requester portssvc.Actor) (*domain.GrabCodeRequest, error) {
	request, err := s.grabCodeRepo.FindGrabCodeRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find grab-code request %s: %w", requestID, err)
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

func (s *grabCodeService) ListGrabCodeRequests(ctx context.Context, requester portssvc.Actor, params dto.ListLeaveRequestsParams) ([]domain.GrabCodeRequest, *string, error) {
	employeeIDs, err := visibleEmployeeIDs(ctx, s.employeeRepo, requester)
	if err != nil {
		return nil, nil, err
	}

	requests, nextToken, err := s.grabCodeRepo.ListGrabCodeRequests(ctx, employeeIDs, params.Limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list grab-code requests: %w", err)
	}
	return requests, nextToken, nil
}

// ApproveGrabCodeRequest transitions a PENDING request to APPROVED and
// generates the voucher code stored on it.
func (s *grabCodeService) ApproveGrabCodeRequest(ctx context.Context, requestID string, approver portssvc.Actor) (*domain.GrabCodeRequest, error) {
	request, err := s.grabCodeRepo.FindGrabCodeRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find grab-code request %s: %w", requestID, err)
	}
	if !request.Status.CanTransitionTo(domain.StatusApproved) {
		return nil, fmt.Errorf("%w: request is %s", apperrors.ErrConflict, request.Status)
	}

	if err := authorizeRequestAction(ctx, s.employeeRepo, approver, request.EmployeeID); err != nil {
		return nil, err
	}

	code, err := utils.GenerateGrabCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate grab code: %w", err)
	}

	now := time.Now()
	if err := s.grabCodeRepo.UpdateGrabCodeStatus(ctx, requestID, domain.StatusApproved, approver.EmployeeID, nil, &code, now); err != nil {
		return nil, fmt.Errorf("failed to approve grab-code request %s: %w", requestID, err)
	}

	request.Status = domain.StatusApproved
	request.ApproverID = &approver.EmployeeID
	request.Code = &code
	request.LastUpdatedAt = now
	request.LastUpdatedBy = approver.EmployeeID

	middleware.GetLoggerFromCtx(ctx).Info("Grab-code request approved",
		slog.String("request_id", requestID),
		slog.String("approver_id", approver.EmployeeID),
	)
	return request, nil
}

func (s *grabCodeService) RejectGrabCodeRequest(ctx context.Context, requestID string, approver portssvc.Actor, reason string) (*domain.GrabCodeRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
	}

	request, err := s.grabCodeRepo.FindGrabCodeRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find grab-code request %s: %w", requestID, err)
	}
	if !request.Status.CanTransitionTo(domain.StatusRejected) {
		return nil, fmt.Errorf("%w: request is %s", apperrors.ErrConflict, request.Status)
	}

	if err := authorizeRequestAction(ctx, s.employeeRepo, approver, request.EmployeeID); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.grabCodeRepo.UpdateGrabCodeStatus(ctx, requestID, domain.StatusRejected, approver.EmployeeID, &reason, nil, now); err != nil {
		return nil, fmt.Errorf("failed to reject grab-code request %s: %w", requestID, err)
	}

	request.Status = domain.StatusRejected
	request.ApproverID = &approver.EmployeeID
	request.RejectionReason = &reason
	request.LastUpdatedAt = now
	request.LastUpdatedBy = approver.EmployeeID

	middleware.GetLoggerFromCtx(ctx).Info("Grab-code request rejected",
		slog.String("request_id", requestID),
		slog.String("approver_id", approver.EmployeeID),
	)
	return request, nil
}
