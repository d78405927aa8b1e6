package handlers

import (
	"net/http"

	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// grabCodeHandler handles the grab-code request workflow.
type grabCodeHandler struct {
	grabCodeService portssvc.GrabCodeSvcFacade
}

func newGrabCodeHandler(gs portssvc.GrabCodeSvcFacade) *grabCodeHandler {
	return &grabCodeHandler{grabCodeService: gs}
}

func registerGrabCodeRoutes(rg *gin.RouterGroup, grabCodeService portssvc.GrabCodeSvcFacade) {
	h := newGrabCodeHandler(grabCodeService)

	requests := rg.Group("/grab-code-requests")
	{
		requests.POST("", h.submitRequest)
		requests.GET("", h.listRequests)
		requests.GET("/:id", h.getRequest)
		requests.POST("/:id/approve", h.approveRequest)
		requests.POST("/:id/reject", h.rejectRequest)
	}
}

// submitRequest godoc
// @Summary Submit a grab-code request
// @Description Requests a transport voucher for a travel date against an active service
// @Tags grab-codes
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateGrabCodeRequestRequest true "Request details"
// @Success 201 {object} dto.GrabCodeRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid input or inactive service"
// @Security BearerAuth
// @Router /grab-code-requests [post]
func (h *grabCodeHandler) submitRequest(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateGrabCodeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.grabCodeService.SubmitGrabCodeRequest(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, err, "Failed to submit grab-code request")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGrabCodeRequestResponse(request))
}

// listRequests godoc
// @Summary List grab-code requests visible to the caller
// @Tags grab-codes
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListGrabCodeRequestsResponse
// @Security BearerAuth
// @Router /grab-code-requests [get]
func (h *grabCodeHandler) listRequests(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var params dto.ListLeaveRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	requests, nextToken, err := h.grabCodeService.ListGrabCodeRequests(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "Failed to list grab-code requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGrabCodeRequestsResponse(requests, nextToken))
}

// getRequest godoc
// @Summary Get a grab-code request by ID
// @Tags grab-codes
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 200 {object} dto.GrabCodeRequestResponse
// @Failure 403 {object} ErrorResponse "Not visible to the caller"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /grab-code-requests/{id} [get]
func (h *grabCodeHandler) getRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	request, err := h.grabCodeService.GetGrabCodeRequestByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to retrieve grab-code request")
		return
	}
	c.JSON(http.StatusOK, dto.ToGrabCodeRequestResponse(request))
}

// approveRequest godoc
// @Summary Approve a pending grab-code request
// @Description Generates a voucher code and stores it on the approved request
// @Tags grab-codes
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 200 {object} dto.GrabCodeRequestResponse
// @Failure 403 {object} ErrorResponse "Caller may not act on this request"
// @Failure 409 {object} ErrorResponse "Request is not pending"
// @Security BearerAuth
// @Router /grab-code-requests/{id}/approve [post]
func (h *grabCodeHandler) approveRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	request, err := h.grabCodeService.ApproveGrabCodeRequest(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to approve grab-code request")
		return
	}
	c.JSON(http.StatusOK, dto.ToGrabCodeRequestResponse(request))
}

// rejectRequest godoc
// @Summary Reject a pending grab-code request
// @Tags grab-codes
// @Accept  json
// @Produce  json
// @Param   id path string true "Request ID"
// @Param   rejection body dto.RejectRequestRequest true "Rejection reason"
// @Success 200 {object} dto.GrabCodeRequestResponse
// @Failure 400 {object} ErrorResponse "Missing reason"
// @Failure 403 {object} ErrorResponse "Caller may not act on this request"
// @Failure 409 {object} ErrorResponse "Request is not pending"
// @Security BearerAuth
// @Router /grab-code-requests/{id}/reject [post]
func (h *grabCodeHandler) rejectRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.grabCodeService.RejectGrabCodeRequest(c.Request.Context(), c.Param("id"), actor, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to reject grab-code request")
		return
	}
	c.JSON(http.StatusOK, dto.ToGrabCodeRequestResponse(request))
}
