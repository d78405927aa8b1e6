package handlers

import (
	"net/http"

	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// tripHandler handles the business-trip request workflow.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{tripService: ts}
}

func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade) {
	h := newTripHandler(tripService)

	trips := rg.Group("/business-trips")
	{
		trips.POST("", h.submitTrip)
		trips.GET("", h.listTrips)
		trips.GET("/:id", h.getTrip)
		trips.POST("/:id/approve", h.approveTrip)
		trips.POST("/:id/reject", h.rejectTrip)
		trips.POST("/:id/cancel", h.cancelTrip)
	}
}

// submitTrip godoc
// @Summary Submit a business-trip request
// @Tags business-trips
// @Accept  json
// @Produce  json
// @Param   trip body dto.CreateTripRequest true "Trip details with optional events and participants"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /business-trips [post]
func (h *tripHandler) submitTrip(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	trip, err := h.tripService.SubmitTrip(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, err, "Failed to submit business trip")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// listTrips godoc
// @Summary List business trips visible to the caller
// @Tags business-trips
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListTripsResponse
// @Security BearerAuth
// @Router /business-trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var params dto.ListLeaveRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	trips, nextToken, err := h.tripService.ListTrips(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "Failed to list business trips")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTripsResponse(trips, nextToken))
}

// getTrip godoc
// @Summary Get a business trip by ID
// @Tags business-trips
// @Produce  json
// @Param   id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 403 {object} ErrorResponse "Not visible to the caller"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Security BearerAuth
// @Router /business-trips/{id} [get]
func (h *tripHandler) getTrip(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	trip, err := h.tripService.GetTripByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to retrieve business trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// approveTrip godoc
// @Summary Approve a pending business trip
// @Tags business-trips
// @Produce  json
// @Param   id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 403 {object} ErrorResponse "Caller may not act on this request"
// @Failure 409 {object} ErrorResponse "Trip is not pending"
// @Security BearerAuth
// @Router /business-trips/{id}/approve [post]
func (h *tripHandler) approveTrip(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	trip, err := h.tripService.ApproveTrip(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to approve business trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// rejectTrip godoc
// @Summary Reject a pending business trip
// @Tags business-trips
// @Accept  json
// @Produce  json
// @Param   id path string true "Trip ID"
// @Param   rejection body dto.RejectRequestRequest true "Rejection reason"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Missing reason"
// @Failure 403 {object} ErrorResponse "Caller may not act on this request"
// @Failure 409 {object} ErrorResponse "Trip is not pending"
// @Security BearerAuth
// @Router /business-trips/{id}/reject [post]
func (h *tripHandler) rejectTrip(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	trip, err := h.tripService.RejectTrip(c.Request.Context(), c.Param("id"), actor, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to reject business trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// cancelTrip godoc
// @Summary Cancel a pending business trip
// @Description Only the requesting employee may cancel, and only while pending
// @Tags business-trips
// @Produce  json
// @Param   id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 403 {object} ErrorResponse "Caller is not the requester"
// @Failure 409 {object} ErrorResponse "Trip is not pending"
// @Security BearerAuth
// @Router /business-trips/{id}/cancel [post]
func (h *tripHandler) cancelTrip(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	trip, err := h.tripService.CancelTrip(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to cancel business trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}
