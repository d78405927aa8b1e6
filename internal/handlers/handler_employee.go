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

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers all employee-related routes. Mutations are
// restricted to admin and HR.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)
	adminOrHR := middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR)

	employees := rg.Group("/employees")
	{
		employees.POST("", adminOrHR, h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/subordinates", h.listSubordinates)
		employees.GET("/:id", h.getEmployee)
		employees.GET("/:id/subordinates", adminOrHR, h.listEmployeeSubordinates)
		employees.PUT("/:id", adminOrHR, h.updateEmployee)
		employees.DELETE("/:id", adminOrHR, h.deactivateEmployee)
	}
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Creates a new employee record with a hashed initial password
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("new_employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// listSubordinates godoc
// @Summary List the authenticated manager's direct subordinates
// @Tags employees
// @Produce  json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /employees/subordinates [get]
func (h *employeeHandler) listSubordinates(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	subordinates, err := h.employeeService.ListSubordinates(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to list subordinates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(subordinates))
}

// listEmployeeSubordinates godoc
// @Summary List a specific employee's direct subordinates
// @Tags employees
// @Produce  json
// @Param   id path string true "Manager employee ID"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /employees/{id}/subordinates [get]
func (h *employeeHandler) listEmployeeSubordinates(c *gin.Context) {
	subordinates, err := h.employeeService.ListSubordinates(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list subordinates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(subordinates))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	updaterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deactivateEmployee godoc
// @Summary Deactivate an employee
// @Description Marks the employee inactive; employee records are never deleted
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 204 "Employee deactivated"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deactivateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	updaterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), c.Param("id"), updaterID); err != nil {
		respondError(c, err, "Failed to deactivate employee")
		return
	}

	logger.Info("Employee deactivated", slog.String("employee_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
