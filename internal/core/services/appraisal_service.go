package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/google/uuid"
)

type appraisalService struct {
	appraisalRepo portsrepo.AppraisalRepository
	employeeRepo  portsrepo.EmployeeRepository
}

// NewAppraisalService creates a new performance-appraisal service.
func NewAppraisalService(appraisalRepo portsrepo.AppraisalRepository, employeeRepo portsrepo.EmployeeRepository) portssvc.AppraisalSvcFacade {
	return &appraisalService{appraisalRepo: appraisalRepo, employeeRepo: employeeRepo}
}

var _ portssvc.AppraisalSvcFacade = (*appraisalService)(nil)

func (s *appraisalService) CreateSurvey(ctx context.Context, req dto.CreateSurveyRequest, creatorID string) (*domain.Survey, error) {
	periodStart, err := time.Parse(dateLayout, req.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid period start", apperrors.ErrValidation)
	}
	periodEnd, err := time.Parse(dateLayout, req.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid period end", apperrors.ErrValidation)
	}
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("%w: period end must not be before period start", apperrors.ErrValidation)
	}

	now := time.Now()
	surveyID := uuid.NewString()
	survey := domain.Survey{
		SurveyID:    surveyID,
		Title:       req.Title,
		Description: req.Description,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		IsActive:    true,
		Questions:   buildQuestions(surveyID, req.Questions),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.appraisalRepo.SaveSurvey(ctx, survey); err != nil {
		return nil, fmt.Errorf("failed to save survey: %w", err)
	}
	return &survey, nil
}

func buildQuestions(surveyID string, reqs []dto.SurveyQuestionRequest) []domain.SurveyQuestion {
	questions := make([]domain.SurveyQuestion, len(reqs))
	for i, q := range reqs {
		questions[i] = domain.SurveyQuestion{
			QuestionID: uuid.NewString(),
			SurveyID:   surveyID,
			Text:       q.Text,
			Kind:       domain.QuestionKind(q.Kind),
			Position:   i + 1,
		}
	}
	return questions
}

func (s *appraisalService) GetSurveyByID(ctx context.Context, surveyID string) (*domain.Survey, error) {
	survey, err := s.appraisalRepo.FindSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find survey %s: %w", surveyID, err)
	}
	return survey, nil
}

func (s *appraisalService) ListSurveys(ctx context.Context, activeOnly bool) ([]domain.Survey, error) {
	surveys, err := s.appraisalRepo.FindSurveys(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	return surveys, nil
}

func (s *appraisalService) UpdateSurvey(ctx context.Context, surveyID string, req dto.UpdateSurveyRequest, updaterID string) (*domain.Survey, error) {
	survey, err := s.appraisalRepo.FindSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Title != nil {
		survey.Title = *req.Title
		updated = true
	}
	if req.Description != nil {
		survey.Description = *req.Description
		updated = true
	}
	if req.IsActive != nil {
		survey.IsActive = *req.IsActive
		updated = true
	}
	if req.Questions != nil {
		survey.Questions = buildQuestions(surveyID, req.Questions)
		updated = true
	}
	if !updated {
		return survey, nil
	}

	survey.LastUpdatedAt = time.Now()
	survey.LastUpdatedBy = updaterID

	if err := s.appraisalRepo.UpdateSurvey(ctx, *survey); err != nil {
		return nil, fmt.Errorf("failed to update survey %s: %w", surveyID, err)
	}
	return survey, nil
}

func (s *appraisalService) DeleteSurvey(ctx context.Context, surveyID string) error {
	if err := s.appraisalRepo.DeleteSurvey(ctx, surveyID); err != nil {
		return fmt.Errorf("failed to delete survey %s: %w", surveyID, err)
	}
	return nil
}

// AssignSurvey assigns the survey to the given employees. Employees who
// already hold an assignment for this survey are skipped, not an error.
func (s *appraisalService) AssignSurvey(ctx context.Context, surveyID string, req dto.AssignSurveyRequest, assignerID string) ([]domain.SurveyAssignment, error) {
	survey, err := s.appraisalRepo.FindSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find survey %s: %w", surveyID, err)
	}
	if !survey.IsActive {
		return nil, fmt.Errorf("%w: survey %s is not active", apperrors.ErrValidation, survey.Title)
	}

	existing, err := s.appraisalRepo.FindAssignmentsBySurvey(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing assignments: %w", err)
	}
	assigned := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		assigned[a.EmployeeID] = struct{}{}
	}

	now := time.Now()
	assignments := make([]domain.SurveyAssignment, 0, len(req.EmployeeIDs))
	for _, employeeID := range req.EmployeeIDs {
		if _, ok := assigned[employeeID]; ok {
			continue
		}
		if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
			return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
		}
		assignments = append(assignments, domain.SurveyAssignment{
			AssignmentID: uuid.NewString(),
			SurveyID:     surveyID,
			EmployeeID:   employeeID,
			AssignedAt:   now,
		})
		assigned[employeeID] = struct{}{}
	}

	if len(assignments) > 0 {
		if err := s.appraisalRepo.SaveAssignments(ctx, assignments); err != nil {
			return nil, fmt.Errorf("failed to save assignments: %w", err)
		}
	}

	middleware.GetLoggerFromCtx(ctx).Info("Survey assigned",
		slog.String("survey_id", surveyID),
		slog.String("assigner_id", assignerID),
		slog.Int("new_assignments", len(assignments)),
	)
	return assignments, nil
}

func (s *appraisalService) ListOwnAssignments(ctx context.Context, employeeID string) ([]domain.SurveyAssignment, error) {
	assignments, err := s.appraisalRepo.FindAssignmentsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// SubmitResponse validates and stores a response for the assignment. The
// submitting employee must own the assignment, every answer must reference a
// question of the survey, RATING questions require a rating of 1 to 5 and
// TEXT questions require non-empty text.
func (s *appraisalService) SubmitResponse(ctx context.Context, assignmentID string, employeeID string, req dto.SubmitResponseRequest) (*domain.SurveyResponse, error) {
	assignment, err := s.appraisalRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find assignment %s: %w", assignmentID, err)
	}
	if assignment.EmployeeID != employeeID {
		return nil, fmt.Errorf("%w: assignment belongs to another employee", apperrors.ErrForbidden)
	}
	if assignment.CompletedAt != nil {
		return nil, fmt.Errorf("%w: assignment already completed", apperrors.ErrDuplicate)
	}

	survey, err := s.appraisalRepo.FindSurveyByID(ctx, assignment.SurveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find survey %s: %w", assignment.SurveyID, err)
	}

	questionsByID := make(map[string]domain.SurveyQuestion, len(survey.Questions))
	for _, q := range survey.Questions {
		questionsByID[q.QuestionID] = q
	}

	answers := make([]domain.SurveyAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		question, ok := questionsByID[a.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: question %s does not belong to the survey", apperrors.ErrValidation, a.QuestionID)
		}
		switch question.Kind {
		case domain.QuestionRating:
			if a.Rating == nil || *a.Rating < 1 || *a.Rating > 5 {
				return nil, fmt.Errorf("%w: question %q requires a rating between 1 and 5", apperrors.ErrValidation, question.Text)
			}
		case domain.QuestionText:
			if strings.TrimSpace(a.Text) == "" {
				return nil, fmt.Errorf("%w: question %q requires a text answer", apperrors.ErrValidation, question.Text)
			}
		}
		answers = append(answers, domain.SurveyAnswer{
			QuestionID: a.QuestionID,
			Rating:     a.Rating,
			Text:       a.Text,
		})
	}

	response := domain.SurveyResponse{
		ResponseID:   uuid.NewString(),
		AssignmentID: assignmentID,
		SurveyID:     assignment.SurveyID,
		EmployeeID:   employeeID,
		SubmittedAt:  time.Now(),
		Answers:      answers,
	}

	if err := s.appraisalRepo.SaveResponse(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to save response: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Survey response submitted",
		slog.String("assignment_id", assignmentID),
		slog.String("employee_id", employeeID),
	)
	return &response, nil
}

func (s *appraisalService) ListResponsesBySurvey(ctx context.Context, surveyID string) ([]domain.SurveyResponse, error) {
	responses, err := s.appraisalRepo.FindResponsesBySurvey(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses for survey %s: %w", surveyID, err)
	}
	return responses, nil
}
