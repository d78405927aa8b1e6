package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// leaveBalanceHandler exposes the accrual calculator and the balance reports.
type leaveBalanceHandler struct {
	balanceService portssvc.LeaveBalanceSvcFacade
}

func newLeaveBalanceHandler(bs portssvc.LeaveBalanceSvcFacade) *leaveBalanceHandler {
	return &leaveBalanceHandler{balanceService: bs}
}

func registerLeaveBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.LeaveBalanceSvcFacade) {
	h := newLeaveBalanceHandler(balanceService)
	adminOrHR := middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR)

	balances := rg.Group("/leave-balance")
	{
		balances.GET("", adminOrHR, h.listBalances)
		balances.GET("/me", h.ownBalance)
		balances.GET("/:employeeID", h.getBalance)
		balances.GET("/export", adminOrHR, h.exportBalances)
		balances.POST("/calculate", adminOrHR, h.calculateAccruals)
	}
}

// calculateAccruals godoc
// @Summary Run the monthly accrual calculation
// @Description Recomputes and persists the prescribed balance for every active employee
// @Tags leave-balance
// @Produce  json
// @Success 200 {object} dto.CalculateAccrualResponse
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /leave-balance/calculate [post]
func (h *leaveBalanceHandler) calculateAccruals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.balanceService.CalculateAccruals(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to calculate accruals")
		return
	}

	logger.Info("Accrual calculation requested via API",
		slog.Int("processed", result.Processed),
		slog.Int("updated", result.Updated),
	)
	c.JSON(http.StatusOK, result)
}

// listBalances godoc
// @Summary List leave balance reports for all active employees
// @Tags leave-balance
// @Produce  json
// @Success 200 {object} dto.ListLeaveBalancesResponse
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /leave-balance [get]
func (h *leaveBalanceHandler) listBalances(c *gin.Context) {
	reports, err := h.balanceService.ListBalanceReports(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list leave balances")
		return
	}
	c.JSON(http.StatusOK, dto.ListLeaveBalancesResponse{Balances: reports})
}

// ownBalance godoc
// @Summary Get the authenticated employee's leave balance report
// @Tags leave-balance
// @Produce  json
// @Success 200 {object} dto.LeaveBalanceReport
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /leave-balance/me [get]
func (h *leaveBalanceHandler) ownBalance(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	report, err := h.balanceService.GetBalanceReport(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve leave balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalance godoc
// @Summary Get a specific employee's leave balance report
// @Description Visible to the employee themselves, their direct manager, and ADMIN/HR
// @Tags leave-balance
// @Produce  json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.LeaveBalanceReport
// @Failure 403 {object} ErrorResponse "Not allowed to view this employee"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /leave-balance/{employeeID} [get]
func (h *leaveBalanceHandler) getBalance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	report, err := h.balanceService.GetBalanceReportFor(c.Request.Context(), actor, c.Param("employeeID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve leave balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

// exportBalances godoc
// @Summary Export leave balance reports as an .xlsx workbook
// @Tags leave-balance
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /leave-balance/export [get]
func (h *leaveBalanceHandler) exportBalances(c *gin.Context) {
	workbook, err := h.balanceService.ExportBalanceReports(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to export leave balances")
		return
	}

	filename := fmt.Sprintf("leave-balances-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, workbook)
}
