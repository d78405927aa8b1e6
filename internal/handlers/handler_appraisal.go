package handlers

import (
	"net/http"

	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// appraisalHandler handles performance-appraisal surveys, assignments and
// responses.
type appraisalHandler struct {
	appraisalService portssvc.AppraisalSvcFacade
}

func newAppraisalHandler(as portssvc.AppraisalSvcFacade) *appraisalHandler {
	return &appraisalHandler{appraisalService: as}
}

func registerAppraisalRoutes(rg *gin.RouterGroup, appraisalService portssvc.AppraisalSvcFacade) {
	h := newAppraisalHandler(appraisalService)
	adminOrHR := middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR)

	appraisal := rg.Group("/performance-appraisal")
	{
		surveys := appraisal.Group("/surveys")
		{
			surveys.POST("", adminOrHR, h.createSurvey)
			surveys.GET("", h.listSurveys)
			surveys.GET("/:id", h.getSurvey)
			surveys.PUT("/:id", adminOrHR, h.updateSurvey)
			surveys.DELETE("/:id", adminOrHR, h.deleteSurvey)
			surveys.POST("/:id/assign", adminOrHR, h.assignSurvey)
			surveys.GET("/:id/responses", adminOrHR, h.listResponses)
		}

		appraisal.GET("/assignments", h.listOwnAssignments)
		appraisal.POST("/assignments/:id/response", h.submitResponse)
	}
}

// createSurvey godoc
// @Summary Create a performance-appraisal survey
// @Tags performance-appraisal
// @Accept  json
// @Produce  json
// @Param   survey body dto.CreateSurveyRequest true "Survey with its questions"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /performance-appraisal/surveys [post]
func (h *appraisalHandler) createSurvey(c *gin.Context) {
	creatorID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	survey, err := h.appraisalService.CreateSurvey(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "Failed to create survey")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSurveyResponse(survey))
}

// listSurveys godoc
// @Summary List surveys
// @Tags performance-appraisal
// @Produce  json
// @Param   activeOnly query bool false "Only active surveys"
// @Success 200 {object} dto.ListSurveysResponse
// @Security BearerAuth
// @Router /performance-appraisal/surveys [get]
func (h *appraisalHandler) listSurveys(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	surveys, err := h.appraisalService.ListSurveys(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err, "Failed to list surveys")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSurveysResponse(surveys))
}

// getSurvey godoc
// @Summary Get a survey with its questions
// @Tags performance-appraisal
// @Produce  json
// @Param   id path string true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 404 {object} ErrorResponse "Survey not found"
// @Security BearerAuth
// @Router /performance-appraisal/surveys/{id} [get]
func (h *appraisalHandler) getSurvey(c *gin.Context) {
	survey, err := h.appraisalService.GetSurveyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve survey")
		return
	}
	c.JSON(http.StatusOK, dto.ToSurveyResponse(survey))
}

// updateSurvey godoc
// @Summary Update a survey
// @Description A non-null questions array replaces the survey's question list
// @Tags performance-appraisal
// @Accept  json
// @Produce  json
// @Param   id path string true "Survey ID"
// @Param   survey body dto.UpdateSurveyRequest true "Fields to update"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Survey not found"
// @Security BearerAuth
// @Router /performance-appraisal/surveys/{id} [put]
func (h *appraisalHandler) updateSurvey(c *gin.Context) {
	updaterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	survey, err := h.appraisalService.UpdateSurvey(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "Failed to update survey")
		return
	}
	c.JSON(http.StatusOK, dto.ToSurveyResponse(survey))
}

// deleteSurvey godoc
// @Summary Delete a survey
// @Tags performance-appraisal
// @Produce  json
// @Param   id path string true "Survey ID"
// @Success 204 "Survey deleted"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Failure 404 {object} ErrorResponse "Survey not found"
// @Security BearerAuth
// @Router /performance-appraisal/surveys/{id} [delete]
func (h *appraisalHandler) deleteSurvey(c *gin.Context) {
	if err := h.appraisalService.DeleteSurvey(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete survey")
		return
	}
	c.Status(http.StatusNoContent)
}

// assignSurvey godoc
// @Summary Assign a survey to employees
// @Description Employees already assigned are skipped
// @Tags performance-appraisal
// @Accept  json
// @Produce  json
// @Param   id path string true "Survey ID"
// @Param   assignment body dto.AssignSurveyRequest true "Employee IDs to assign"
// @Success 201 {object} dto.ListAssignmentsResponse
// @Failure 400 {object} ErrorResponse "Invalid input or inactive survey"
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /performance-appraisal/surveys/{id}/assign [post]
func (h *appraisalHandler) assignSurvey(c *gin.Context) {
	assignerID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.AssignSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	assignments, err := h.appraisalService.AssignSurvey(c.Request.Context(), c.Param("id"), req, assignerID)
	if err != nil {
		respondError(c, err, "Failed to assign survey")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListAssignmentsResponse(assignments))
}

// listOwnAssignments godoc
// @Summary List the authenticated employee's survey assignments
// @Tags performance-appraisal
// @Produce  json
// @Success 200 {object} dto.ListAssignmentsResponse
// @Security BearerAuth
// @Router /performance-appraisal/assignments [get]
func (h *appraisalHandler) listOwnAssignments(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	assignments, err := h.appraisalService.ListOwnAssignments(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to list assignments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssignmentsResponse(assignments))
}

// submitResponse godoc
// @Summary Submit a response for a survey assignment
// @Description The caller must own the assignment; each assignment takes exactly one response
// @Tags performance-appraisal
// @Accept  json
// @Produce  json
// @Param   id path string true "Assignment ID"
// @Param   response body dto.SubmitResponseRequest true "Answers"
// @Success 201 {object} dto.SubmittedResponseDTO
// @Failure 400 {object} ErrorResponse "Invalid answers"
// @Failure 403 {object} ErrorResponse "Assignment belongs to another employee"
// @Failure 409 {object} ErrorResponse "Assignment already completed"
// @Security BearerAuth
// @Router /performance-appraisal/assignments/{id}/response [post]
func (h *appraisalHandler) submitResponse(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.appraisalService.SubmitResponse(c.Request.Context(), c.Param("id"), employeeID, req)
	if err != nil {
		respondError(c, err, "Failed to submit response")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubmittedResponse(response))
}

// listResponses godoc
// @Summary List the responses collected for a survey
// @Tags performance-appraisal
// @Produce  json
// @Param   id path string true "Survey ID"
// @Success 200 {object} dto.ListSubmittedResponsesResponse
// @Failure 403 {object} ErrorResponse "Requires ADMIN or HR role"
// @Security BearerAuth
// @Router /performance-appraisal/surveys/{id}/responses [get]
func (h *appraisalHandler) listResponses(c *gin.Context) {
	responses, err := h.appraisalService.ListResponsesBySurvey(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list survey responses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSubmittedResponses(responses))
}
