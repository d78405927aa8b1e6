package repositories

import (
	"context"

	"github.com/andikarp/hris-backend/internal/core/domain"
)

// AppraisalRepository defines persistence operations for performance-appraisal
// surveys, assignments and responses.
type AppraisalRepository interface {
	SaveSurvey(ctx context.Context, survey domain.Survey) error
	FindSurveyByID(ctx context.Context, surveyID string) (*domain.Survey, error)
	FindSurveys(ctx context.Context, activeOnly bool) ([]domain.Survey, error)
	UpdateSurvey(ctx context.Context, survey domain.Survey) error
	DeleteSurvey(ctx context.Context, surveyID string) error

	SaveAssignments(ctx context.Context, assignments []domain.SurveyAssignment) error
	FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.SurveyAssignment, error)
	FindAssignmentsByEmployee(ctx context.Context, employeeID string) ([]domain.SurveyAssignment, error)
	FindAssignmentsBySurvey(ctx context.Context, surveyID string) ([]domain.SurveyAssignment, error)

	// SaveResponse stores the response with its answers and marks the
	// assignment completed in the same transaction. A second response for the
	// same assignment returns apperrors.ErrDuplicate.
	SaveResponse(ctx context.Context, response domain.SurveyResponse) error
	FindResponsesBySurvey(ctx context.Context, surveyID string) ([]domain.SurveyResponse, error)
}
