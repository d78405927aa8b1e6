package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/andikarp/hris-backend/internal/report"
	"github.com/andikarp/hris-backend/internal/utils"
	"github.com/shopspring/decimal"
)

// leaveBalanceService implements the monthly accrual calculator and the
// read-only balance reporting.
type leaveBalanceService struct {
	employeeRepo     portsrepo.EmployeeRepository
	leaveTypeRepo    portsrepo.LeaveTypeRepository
	leaveRequestRepo portsrepo.LeaveRequestRepository
}

// NewLeaveBalanceService creates a new leave balance service.
func NewLeaveBalanceService(employeeRepo portsrepo.EmployeeRepository, leaveTypeRepo portsrepo.LeaveTypeRepository, leaveRequestRepo portsrepo.LeaveRequestRepository) portssvc.LeaveBalanceSvcFacade {
	return &leaveBalanceService{
		employeeRepo:     employeeRepo,
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
	}
}

var _ portssvc.LeaveBalanceSvcFacade = (*leaveBalanceService)(nil)

// CalculateAccruals recomputes the prescribed balance for every active
// employee and persists it where it differs from the stored value. The
// prescribed balance REPLACES the stored one; it is the total ever accrued,
// not a delta. Per-employee failures are logged and skipped so the rest of
// the batch still runs.
func (s *leaveBalanceService) CalculateAccruals(ctx context.Context) (*dto.CalculateAccrualResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	employees, err := s.employeeRepo.FindActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active employees: %w", err)
	}

	result := dto.CalculateAccrualResponse{}
	for _, employee := range employees {
		result.Processed++

		prescribed := prescribedBalance(employee, now)
		if prescribed.Equal(employee.LeaveBalance) {
			continue
		}

		if err := s.employeeRepo.UpdateLeaveBalance(ctx, employee.EmployeeID, prescribed, "accrual-job", now); err != nil {
			logger.Error("Failed to persist accrued balance, skipping employee",
				slog.String("employee_id", employee.EmployeeID),
				slog.String("error", err.Error()),
			)
			result.Skipped++
			continue
		}
		result.Updated++
	}

	logger.Info("Accrual batch completed",
		slog.Int("processed", result.Processed),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
	)
	return &result, nil
}

// prescribedBalance computes months_joined * monthly rate for an employee.
// months_joined uses the 30.44 average-days-per-month divisor, clamped at
// zero. An employee hired after the 16th of the current month is not yet
// eligible and keeps a prescribed balance of zero for that month.
func prescribedBalance(employee domain.Employee, now time.Time) decimal.Decimal {
	if !utils.EligibleForCurrentMonthAccrual(employee.StartDate, now) {
		return decimal.Zero
	}
	months := utils.MonthsSinceJoin(employee.StartDate, now)
	if months <= 0 {
		return decimal.Zero
	}
	return employee.EmploymentType.MonthlyAccrualRate().Mul(decimal.NewFromInt(int64(months)))
}

func (s *leaveBalanceService) GetBalanceReport(ctx context.Context, employeeID string) (*dto.LeaveBalanceReport, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	leaveTypes, err := s.leaveTypesByID(ctx)
	if err != nil {
		return nil, err
	}

	return s.buildReport(ctx, *employee, leaveTypes)
}

// GetBalanceReportFor checks the actor may view the target employee's
// balance before building the report. Admin and HR see anyone, a manager
// only direct subordinates, everybody their own.
func (s *leaveBalanceService) GetBalanceReportFor(ctx context.Context, actor portssvc.Actor, employeeID string) (*dto.LeaveBalanceReport, error) {
	allowed, err := canViewRequest(ctx, s.employeeRepo, actor, employeeID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: cannot view this employee's balance", apperrors.ErrForbidden)
	}
	return s.GetBalanceReport(ctx, employeeID)
}

// ListBalanceReports builds the report for every active employee. An
// employee whose approved-leave rows cannot be fetched is logged and
// skipped, not fatal to the batch.
func (s *leaveBalanceService) ListBalanceReports(ctx context.Context) ([]dto.LeaveBalanceReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employees, err := s.employeeRepo.FindActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active employees: %w", err)
	}

	leaveTypes, err := s.leaveTypesByID(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]dto.LeaveBalanceReport, 0, len(employees))
	for _, employee := range employees {
		rep, err := s.buildReport(ctx, employee, leaveTypes)
		if err != nil {
			logger.Error("Failed to build balance report, skipping employee",
				slog.String("employee_id", employee.EmployeeID),
				slog.String("error", err.Error()),
			)
			continue
		}
		reports = append(reports, *rep)
	}
	return reports, nil
}

func (s *leaveBalanceService) ExportBalanceReports(ctx context.Context) ([]byte, error) {
	reports, err := s.ListBalanceReports(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildLeaveBalanceWorkbook(reports)
}

// buildReport aggregates the employee's approved requests by leave-type
// polarity. ADDITION types sum their day value into totalAdded; everything
// else sums days_requested into totalBalanceUsed. Read-only; the stored
// balance is never touched here.
func (s *leaveBalanceService) buildReport(ctx context.Context, employee domain.Employee, leaveTypes map[string]domain.LeaveType) (*dto.LeaveBalanceReport, error) {
	approved, err := s.leaveRequestRepo.FindApprovedByEmployee(ctx, employee.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved requests for %s: %w", employee.EmployeeID, err)
	}

	totalAdded := decimal.Zero
	totalUsed := decimal.Zero
	for _, request := range approved {
		leaveType, ok := leaveTypes[request.LeaveTypeID]
		if ok && leaveType.Polarity == domain.PolarityAddition {
			totalAdded = totalAdded.Add(leaveType.DayValue)
		} else {
			totalUsed = totalUsed.Add(request.DaysRequested)
		}
	}

	return &dto.LeaveBalanceReport{
		EmployeeID:          employee.EmployeeID,
		FullName:            employee.FullName,
		EmploymentType:      string(employee.EmploymentType),
		TotalBalance:        employee.LeaveBalance,
		TotalAdded:          totalAdded,
		TotalBalanceUsed:    totalUsed,
		CurrentLeaveBalance: employee.LeaveBalance.Add(totalAdded).Sub(totalUsed),
	}, nil
}

func (s *leaveBalanceService) leaveTypesByID(ctx context.Context) (map[string]domain.LeaveType, error) {
	leaveTypes, err := s.leaveTypeRepo.FindLeaveTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave types: %w", err)
	}
	byID := make(map[string]domain.LeaveType, len(leaveTypes))
	for _, lt := range leaveTypes {
		byID[lt.LeaveTypeID] = lt
	}
	return byID, nil
}
