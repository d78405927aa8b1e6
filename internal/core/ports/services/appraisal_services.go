package services

import (
	"context"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/andikarp/hris-backend/internal/dto"
)

// AppraisalSvcFacade defines performance-appraisal survey management,
// assignment and response collection.
type AppraisalSvcFacade interface {
	CreateSurvey(ctx context.Context, req dto.CreateSurveyRequest, creatorID string) (*domain.Survey, error)
	GetSurveyByID(ctx context.Context, surveyID string) (*domain.Survey, error)
	ListSurveys(ctx context.Context, activeOnly bool) ([]domain.Survey, error)
	UpdateSurvey(ctx context.Context, surveyID string, req dto.UpdateSurveyRequest, updaterID string) (*domain.Survey, error)
	DeleteSurvey(ctx context.Context, surveyID string) error

	// AssignSurvey assigns the survey to the given employees, skipping
	// employees already assigned.
	AssignSurvey(ctx context.Context, surveyID string, req dto.AssignSurveyRequest, assignerID string) ([]domain.SurveyAssignment, error)
	ListOwnAssignments(ctx context.Context, employeeID string) ([]domain.SurveyAssignment, error)

	// SubmitResponse validates and stores a response for the assignment; the
	// submitting employee must own the assignment and each RATING answer
	// must be within 1-5.
	SubmitResponse(ctx context.Context, assignmentID string, employeeID string, req dto.SubmitResponseRequest) (*domain.SurveyResponse, error)
	ListResponsesBySurvey(ctx context.Context, surveyID string) ([]domain.SurveyResponse, error)
}
