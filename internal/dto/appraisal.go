package dto

import (
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
)

// SurveyQuestionRequest is one question within a survey create/update.
type SurveyQuestionRequest struct {
	Text string `json:"text" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=RATING TEXT"`
}

// CreateSurveyRequest carries the fields needed to create a survey.
type CreateSurveyRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	PeriodStart string                  `json:"periodStart" binding:"required,datetime=2006-01-02"`
	PeriodEnd   string                  `json:"periodEnd" binding:"required,datetime=2006-01-02"`
	Questions   []SurveyQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// UpdateSurveyRequest carries the updatable fields of a survey. A non-nil
// Questions slice replaces the question list.
type UpdateSurveyRequest struct {
	Title       *string                 `json:"title"`
	Description *string                 `json:"description"`
	IsActive    *bool                   `json:"isActive"`
	Questions   []SurveyQuestionRequest `json:"questions" binding:"omitempty,dive"`
}

// AssignSurveyRequest assigns a survey to a set of employees.
type AssignSurveyRequest struct {
	EmployeeIDs []string `json:"employeeIDs" binding:"required,min=1"`
}

// SurveyAnswerRequest is one answer within a response submission.
type SurveyAnswerRequest struct {
	QuestionID string `json:"questionID" binding:"required"`
	Rating     *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Text       string `json:"text"`
}

// SubmitResponseRequest carries a survey response submission.
type SubmitResponseRequest struct {
	Answers []SurveyAnswerRequest `json:"answers" binding:"required,min=1,dive"`
}

// SurveyQuestionResponse is the API representation of a survey question.
type SurveyQuestionResponse struct {
	QuestionID string `json:"questionID"`
	Text       string `json:"text"`
	Kind       string `json:"kind"`
	Position   int    `json:"position"`
}

// SurveyResponseDTO is the API representation of a survey.
type SurveyResponseDTO struct {
	SurveyID    string                   `json:"surveyID"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	PeriodStart string                   `json:"periodStart"`
	PeriodEnd   string                   `json:"periodEnd"`
	IsActive    bool                     `json:"isActive"`
	Questions   []SurveyQuestionResponse `json:"questions,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
}

// ListSurveysResponse wraps the list of surveys.
type ListSurveysResponse struct {
	Surveys []SurveyResponseDTO `json:"surveys"`
}

// AssignmentResponse is the API representation of a survey assignment.
type AssignmentResponse struct {
	AssignmentID string     `json:"assignmentID"`
	SurveyID     string     `json:"surveyID"`
	EmployeeID   string     `json:"employeeID"`
	AssignedAt   time.Time  `json:"assignedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// SubmittedResponseDTO is the API representation of a submitted response.
type SubmittedResponseDTO struct {
	ResponseID   string                `json:"responseID"`
	AssignmentID string                `json:"assignmentID"`
	SurveyID     string                `json:"surveyID"`
	EmployeeID   string                `json:"employeeID"`
	SubmittedAt  time.Time             `json:"submittedAt"`
	Answers      []domain.SurveyAnswer `json:"answers"`
}

// ListAssignmentsResponse wraps the list of survey assignments.
type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

// ListSubmittedResponsesResponse wraps the responses collected for a survey.
type ListSubmittedResponsesResponse struct {
	Responses []SubmittedResponseDTO `json:"responses"`
}

// ToSurveyResponse converts a domain.Survey.
func ToSurveyResponse(s *domain.Survey) SurveyResponseDTO {
	questions := make([]SurveyQuestionResponse, len(s.Questions))
	for i, q := range s.Questions {
		questions[i] = SurveyQuestionResponse{
			QuestionID: q.QuestionID,
			Text:       q.Text,
			Kind:       string(q.Kind),
			Position:   q.Position,
		}
	}
	return SurveyResponseDTO{
		SurveyID:    s.SurveyID,
		Title:       s.Title,
		Description: s.Description,
		PeriodStart: s.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   s.PeriodEnd.Format("2006-01-02"),
		IsActive:    s.IsActive,
		Questions:   questions,
		CreatedAt:   s.CreatedAt,
	}
}

// ToListSurveysResponse converts a slice of domain.Survey.
func ToListSurveysResponse(surveys []domain.Survey) ListSurveysResponse {
	out := make([]SurveyResponseDTO, len(surveys))
	for i := range surveys {
		out[i] = ToSurveyResponse(&surveys[i])
	}
	return ListSurveysResponse{Surveys: out}
}

// ToAssignmentResponse converts a domain.SurveyAssignment.
func ToAssignmentResponse(a *domain.SurveyAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.AssignmentID,
		SurveyID:     a.SurveyID,
		EmployeeID:   a.EmployeeID,
		AssignedAt:   a.AssignedAt,
		CompletedAt:  a.CompletedAt,
	}
}

// ToListAssignmentsResponse converts a slice of domain.SurveyAssignment.
func ToListAssignmentsResponse(assignments []domain.SurveyAssignment) ListAssignmentsResponse {
	out := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		out[i] = ToAssignmentResponse(&assignments[i])
	}
	return ListAssignmentsResponse{Assignments: out}
}

// ToSubmittedResponse converts a domain.SurveyResponse.
func ToSubmittedResponse(r *domain.SurveyResponse) SubmittedResponseDTO {
	return SubmittedResponseDTO{
		ResponseID:   r.ResponseID,
		AssignmentID: r.AssignmentID,
		SurveyID:     r.SurveyID,
		EmployeeID:   r.EmployeeID,
		SubmittedAt:  r.SubmittedAt,
		Answers:      r.Answers,
	}
}

// ToListSubmittedResponses converts a slice of domain.SurveyResponse.
func ToListSubmittedResponses(responses []domain.SurveyResponse) ListSubmittedResponsesResponse {
	out := make([]SubmittedResponseDTO, len(responses))
	for i := range responses {
		out[i] = ToSubmittedResponse(&responses[i])
	}
	return ListSubmittedResponsesResponse{Responses: out}
}
