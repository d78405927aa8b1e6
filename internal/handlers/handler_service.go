package handlers

import (
	"net/http"

	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// serviceHandler manages the transport-service catalog referenced by
// grab-code requests.
type serviceHandler struct {
	catalogService portssvc.ServiceCatalogSvcFacade
}

func newServiceHandler(cs portssvc.ServiceCatalogSvcFacade) *serviceHandler {
	return &serviceHandler{catalogService: cs}
}

func registerServiceRoutes(rg *gin.RouterGroup, catalogService portssvc.ServiceCatalogSvcFacade) {
	h := newServiceHandler(catalogService)
	adminOrHR := middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR)

	services := rg.Group("/services")
	{
		services.POST("", adminOrHR, h.createService)
		services.GET("", h.listServices)
		services.GET("/:id", h.getService)
		services.PUT("/:id", adminOrHR, h.updateService)
		services.DELETE("/:id", adminOrHR, h.deleteService)
	}
}

// createService godoc
// @Summary Create a transport service
// @Tags services
// @Accept  json
// @Produce  json
// @Param   service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /services [post]
func (h *serviceHandler) createService(c *gin.Context) {
	creatorID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

// listServices godoc
// @Summary List transport services
// @Tags services
// @Produce  json
// @Param   activeOnly query bool false "Only active services"
// @Success 200 {object} dto.ListServicesResponse
// @Security BearerAuth
// @Router /services [get]
func (h *serviceHandler) listServices(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	services, err := h.catalogService.ListServices(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, dto.ToListServicesResponse(services))
}

// getService godoc
// @Summary Get a transport service by ID
// @Tags services
// @Produce  json
// @Param   id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} ErrorResponse "Service not found"
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *serviceHandler) getService(c *gin.Context) {
	service, err := h.catalogService.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve service")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// updateService godoc
// @Summary Update a transport service
// @Tags services
// @Accept  json
// @Produce  json
// @Param   id path string true "Service ID"
// @Param   service body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} dto.ServiceResponse
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *serviceHandler) updateService(c *gin.Context) {
	updaterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// deleteService godoc
// @Summary Delete a transport service
// @Tags services
// @Produce  json
// @Param   id path string true "Service ID"
// @Success 204 "Service deleted"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *serviceHandler) deleteService(c *gin.Context) {
	if err := h.catalogService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}
