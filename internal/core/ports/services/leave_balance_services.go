package services

import (
	"context"

	"github.com/andikarp/hris-backend/internal/dto"
)

// LeaveBalanceSvcFacade defines the monthly accrual calculator and the
// read-only balance reporting.
type LeaveBalanceSvcFacade interface {
	// CalculateAccruals recomputes and persists the prescribed balance for
	// every active employee. Per-employee failures are logged and skipped.
	CalculateAccruals(ctx context.Context) (*dto.CalculateAccrualResponse, error)

	// GetBalanceReport builds the read-only report for one employee.
	GetBalanceReport(ctx context.Context, employeeID string) (*dto.LeaveBalanceReport, error)

	// GetBalanceReportFor builds the report for another employee after
	// checking the actor may view it (self, admin/HR, or the employee's
	// direct manager).
	GetBalanceReportFor(ctx context.Context, actor Actor, employeeID string) (*dto.LeaveBalanceReport, error)

	// ListBalanceReports builds reports for all active employees. An
	// employee whose approved-leave rows cannot be fetched is skipped.
	ListBalanceReports(ctx context.Context) ([]dto.LeaveBalanceReport, error)

	// ExportBalanceReports renders the report list as an .xlsx workbook.
	ExportBalanceReports(ctx context.Context) ([]byte, error)
}
