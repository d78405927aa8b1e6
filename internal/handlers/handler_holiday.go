package handlers

import (
	"net/http"

	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type holidayHandler struct {
	holidayService portssvc.HolidaySvcFacade
}

func newHolidayHandler(hs portssvc.HolidaySvcFacade) *holidayHandler {
	return &holidayHandler{holidayService: hs}
}

func registerHolidayRoutes(rg *gin.RouterGroup, holidayService portssvc.HolidaySvcFacade) {
	h := newHolidayHandler(holidayService)
	adminOrHR := middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR)

	holidays := rg.Group("/holidays")
	{
		holidays.POST("", adminOrHR, h.createHoliday)
		holidays.GET("", h.listHolidays)
		holidays.GET("/:id", h.getHoliday)
		holidays.PUT("/:id", adminOrHR, h.updateHoliday)
		holidays.DELETE("/:id", adminOrHR, h.deleteHoliday)
	}
}

// createHoliday godoc
// @Summary Create a holiday
// @Description Creates a named holiday; at most one holiday may exist per date
// @Tags holidays
// @Accept  json
// @Produce  json
// @Param   holiday body dto.CreateHolidayRequest true "Holiday details"
// @Success 201 {object} dto.HolidayResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 409 {object} ErrorResponse "A holiday already exists on that date"
// @Security BearerAuth
// @Router /holidays [post]
func (h *holidayHandler) createHoliday(c *gin.Context) {
	creatorID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	holiday, err := h.holidayService.CreateHoliday(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "Failed to create holiday")
		return
	}
	c.JSON(http.StatusCreated, dto.ToHolidayResponse(holiday))
}

// listHolidays godoc
// @Summary List holidays for a year
// @Tags holidays
// @Produce  json
// @Param   year query int false "Calendar year, defaults to the current year"
// @Success 200 {object} dto.ListHolidaysResponse
// @Security BearerAuth
// @Router /holidays [get]
func (h *holidayHandler) listHolidays(c *gin.Context) {
	var params dto.ListHolidaysParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	holidays, err := h.holidayService.ListHolidays(c.Request.Context(), params.Year)
	if err != nil {
		respondError(c, err, "Failed to list holidays")
		return
	}
	c.JSON(http.StatusOK, dto.ToListHolidaysResponse(holidays))
}

// getHoliday godoc
// @Summary Get a holiday by ID
// @Tags holidays
// @Produce  json
// @Param   id path string true "Holiday ID"
// @Success 200 {object} dto.HolidayResponse
// @Failure 404 {object} ErrorResponse "Holiday not found"
// @Security BearerAuth
// @Router /holidays/{id} [get]
func (h *holidayHandler) getHoliday(c *gin.Context) {
	holiday, err := h.holidayService.GetHolidayByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve holiday")
		return
	}
	c.JSON(http.StatusOK, dto.ToHolidayResponse(holiday))
}

// updateHoliday godoc
// @Summary Update a holiday
// @Tags holidays
// @Accept  json
// @Produce  json
// @Param   id path string true "Holiday ID"
// @Param   holiday body dto.UpdateHolidayRequest true "Fields to update"
// @Success 200 {object} dto.HolidayResponse
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Holiday not found"
// @Failure 409 {object} ErrorResponse "A holiday already exists on that date"
// @Security BearerAuth
// @Router /holidays/{id} [put]
func (h *holidayHandler) updateHoliday(c *gin.Context) {
	updaterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	holiday, err := h.holidayService.UpdateHoliday(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "Failed to update holiday")
		return
	}
	c.JSON(http.StatusOK, dto.ToHolidayResponse(holiday))
}

// deleteHoliday godoc
// @Summary Delete a holiday
// @Tags holidays
// @Produce  json
// @Param   id path string true "Holiday ID"
// @Success 204 "Holiday deleted"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Holiday not found"
// @Security BearerAuth
// @Router /holidays/{id} [delete]
func (h *holidayHandler) deleteHoliday(c *gin.Context) {
	if err := h.holidayService.DeleteHoliday(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete holiday")
		return
	}
	c.Status(http.StatusNoContent)
}
