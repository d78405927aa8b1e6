package handlers

import (
	"net/http"

	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func newDepartmentHandler(ds portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{departmentService: ds}
}

func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)
	adminOrHR := middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR)

	departments := rg.Group("/departments")
	{
		departments.POST("", adminOrHR, h.createDepartment)
		departments.GET("", h.listDepartments)
		departments.GET("/:id", h.getDepartment)
		departments.GET("/:id/members", h.listMembers)
		departments.PUT("/:id", adminOrHR, h.updateDepartment)
		departments.DELETE("/:id", adminOrHR, h.deleteDepartment)
	}
}

// createDepartment godoc
// @Summary Create a department
// @Tags departments
// @Accept  json
// @Produce  json
// @Param   department body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	creatorID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "Failed to create department")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// listDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce  json
// @Success 200 {object} dto.ListDepartmentsResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list departments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDepartmentsResponse(departments))
}

// getDepartment godoc
// @Summary Get a department by ID
// @Tags departments
// @Produce  json
// @Param   id path string true "Department ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *departmentHandler) getDepartment(c *gin.Context) {
	department, err := h.departmentService.GetDepartmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve department")
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// listMembers godoc
// @Summary List the employees assigned to a department
// @Tags departments
// @Produce  json
// @Param   id path string true "Department ID"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id}/members [get]
func (h *departmentHandler) listMembers(c *gin.Context) {
	members, err := h.departmentService.ListDepartmentMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list department members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(members))
}

// updateDepartment godoc
// @Summary Update a department
// @Tags departments
// @Accept  json
// @Produce  json
// @Param   id path string true "Department ID"
// @Param   department body dto.UpdateDepartmentRequest true "Fields to update"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *departmentHandler) updateDepartment(c *gin.Context) {
	updaterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "Failed to update department")
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// deleteDepartment godoc
// @Summary Delete a department
// @Description Deletes a department; fails while employees are still assigned
// @Tags departments
// @Produce  json
// @Param   id path string true "Department ID"
// @Success 204 "Department deleted"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Failure 409 {object} ErrorResponse "Department still has employees"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	if err := h.departmentService.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete department")
		return
	}
	c.Status(http.StatusNoContent)
}
