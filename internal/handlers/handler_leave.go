package handlers

import (
	"log/slog"
	"net/http"

	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// leaveHandler handles leave-type management and the leave-request workflow.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

func newLeaveHandler(ls portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{leaveService: ls}
}

func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(leaveService)
	adminOrHR := middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR)

	leaveTypes := rg.Group("/leave-types")
	{
		leaveTypes.POST("", adminOrHR, h.createLeaveType)
		leaveTypes.GET("", h.listLeaveTypes)
		leaveTypes.GET("/:id", h.getLeaveType)
		leaveTypes.PUT("/:id", adminOrHR, h.updateLeaveType)
		leaveTypes.DELETE("/:id", adminOrHR, h.deleteLeaveType)
	}

	leaves := rg.Group("/leaves")
	{
		leaves.POST("", h.submitLeaveRequest)
		leaves.GET("", h.listLeaveRequests)
		leaves.GET("/:id", h.getLeaveRequest)
		leaves.POST("/:id/approve", h.approveLeaveRequest)
		leaves.POST("/:id/reject", h.rejectLeaveRequest)
	}
}

// createLeaveType godoc
// @Summary Create a leave type
// @Tags leave-types
// @Accept  json
// @Produce  json
// @Param   leaveType body dto.CreateLeaveTypeRequest true "Leave type details"
// @Success 201 {object} dto.LeaveTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /leave-types [post]
func (h *leaveHandler) createLeaveType(c *gin.Context) {
	creatorID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	leaveType, err := h.leaveService.CreateLeaveType(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "Failed to create leave type")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveTypeResponse(leaveType))
}

// listLeaveTypes godoc
// @Summary List leave types
// @Tags leave-types
// @Produce  json
// @Success 200 {object} dto.ListLeaveTypesResponse
// @Security BearerAuth
// @Router /leave-types [get]
func (h *leaveHandler) listLeaveTypes(c *gin.Context) {
	leaveTypes, err := h.leaveService.ListLeaveTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list leave types")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLeaveTypesResponse(leaveTypes))
}

// getLeaveType godoc
// @Summary Get a leave type by ID
// @Tags leave-types
// @Produce  json
// @Param   id path string true "Leave type ID"
// @Success 200 {object} dto.LeaveTypeResponse
// @Failure 404 {object} ErrorResponse "Leave type not found"
// @Security BearerAuth
// @Router /leave-types/{id} [get]
func (h *leaveHandler) getLeaveType(c *gin.Context) {
	leaveType, err := h.leaveService.GetLeaveTypeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve leave type")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveTypeResponse(leaveType))
}

// updateLeaveType godoc
// @Summary Update a leave type
// @Tags leave-types
// @Accept  json
// @Produce  json
// @Param   id path string true "Leave type ID"
// @Param   leaveType body dto.UpdateLeaveTypeRequest true "Fields to update"
// @Success 200 {object} dto.LeaveTypeResponse
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Leave type not found"
// @Security BearerAuth
// @Router /leave-types/{id} [put]
func (h *leaveHandler) updateLeaveType(c *gin.Context) {
	updaterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	leaveType, err := h.leaveService.UpdateLeaveType(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "Failed to update leave type")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveTypeResponse(leaveType))
}

// deleteLeaveType godoc
// @Summary Delete a leave type
// @Tags leave-types
// @Produce  json
// @Param   id path string true "Leave type ID"
// @Success 204 "Leave type deleted"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Leave type not found"
// @Security BearerAuth
// @Router /leave-types/{id} [delete]
func (h *leaveHandler) deleteLeaveType(c *gin.Context) {
	if err := h.leaveService.DeleteLeaveType(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete leave type")
		return
	}
	c.Status(http.StatusNoContent)
}

// submitLeaveRequest godoc
// @Summary Submit a leave request
// @Description Validates the date range, balance and overlaps, then creates a PENDING request
// @Tags leaves
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateLeaveRequestRequest true "Leave request details"
// @Success 201 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid dates or insufficient balance"
// @Failure 409 {object} ErrorResponse "Overlapping request exists"
// @Security BearerAuth
// @Router /leaves [post]
func (h *leaveHandler) submitLeaveRequest(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.leaveService.SubmitLeaveRequest(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, err, "Failed to submit leave request")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveRequestResponse(request))
}

// listLeaveRequests godoc
// @Summary List leave requests visible to the caller
// @Description Employees see their own, managers their subordinates', admin/HR everyone's
// @Tags leaves
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListLeaveRequestsResponse
// @Security BearerAuth
// @Router /leaves [get]
func (h *leaveHandler) listLeaveRequests(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var params dto.ListLeaveRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	requests, nextToken, err := h.leaveService.ListLeaveRequests(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "Failed to list leave requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLeaveRequestsResponse(requests, nextToken))
}

// getLeaveRequest godoc
// @Summary Get a leave request by ID
// @Tags leaves
// @Produce  json
// @Param   id path string true "Leave request ID"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 403 {object} ErrorResponse "Not visible to the caller"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /leaves/{id} [get]
func (h *leaveHandler) getLeaveRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	request, err := h.leaveService.GetLeaveRequestByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to retrieve leave request")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// approveLeaveRequest godoc
// @Summary Approve a pending leave request
// @Description Applies the leave type's balance effect at the moment of approval
// @Tags leaves
// @Produce  json
// @Param   id path string true "Leave request ID"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 403 {object} ErrorResponse "Caller may not act on this request"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request is not pending"
// @Security BearerAuth
// @Router /leaves/{id}/approve [post]
func (h *leaveHandler) approveLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	request, err := h.leaveService.ApproveLeaveRequest(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to approve leave request")
		return
	}

	logger.Info("Leave request approved via API", slog.String("leave_request_id", request.LeaveRequestID))
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// rejectLeaveRequest godoc
// @Summary Reject a pending leave request
// @Description Requires a reason of at least 10 characters
// @Tags leaves
// @Accept  json
// @Produce  json
// @Param   id path string true "Leave request ID"
// @Param   rejection body dto.RejectRequestRequest true "Rejection reason"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse "Reason too short"
// @Failure 403 {object} ErrorResponse "Caller may not act on this request"
// @Failure 409 {object} ErrorResponse "Request is not pending"
// @Security BearerAuth
// @Router /leaves/{id}/reject [post]
func (h *leaveHandler) rejectLeaveRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.leaveService.RejectLeaveRequest(c.Request.Context(), c.Param("id"), actor, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to reject leave request")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}
