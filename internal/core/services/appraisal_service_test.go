package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/core/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AppraisalServiceTestSuite struct {
	suite.Suite
	mockAppraisalRepo *MockAppraisalRepository
	mockEmployeeRepo  *MockEmployeeRepository
	service           portssvc.AppraisalSvcFacade
}

func (suite *AppraisalServiceTestSuite) SetupTest() {
	suite.mockAppraisalRepo = new(MockAppraisalRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewAppraisalService(suite.mockAppraisalRepo, suite.mockEmployeeRepo)
}

func (suite *AppraisalServiceTestSuite) TestCreateSurvey_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateSurveyRequest{
		Title:       "H1 2026 Review",
		Description: "Semi-annual performance review",
		PeriodStart: "2026-01-01",
		PeriodEnd:   "2026-06-30",
		Questions: []dto.SurveyQuestionRequest{
			{Text: "Rate collaboration", Kind: "RATING"},
			{Text: "Biggest win this period", Kind: "TEXT"},
		},
	}

	suite.mockAppraisalRepo.On("SaveSurvey", ctx, mock.AnythingOfType("domain.Survey")).Return(nil).Once()

	survey, err := suite.service.CreateSurvey(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(survey)
	suite.True(survey.IsActive)
	suite.Require().Len(survey.Questions, 2)
	suite.Equal(1, survey.Questions[0].Position)
	suite.Equal(2, survey.Questions[1].Position)
	suite.Equal(domain.QuestionRating, survey.Questions[0].Kind)
	suite.mockAppraisalRepo.AssertExpectations(suite.T())
}

func (suite *AppraisalServiceTestSuite) TestCreateSurvey_PeriodEndBeforeStart() {
	ctx := context.Background()
	req := dto.CreateSurveyRequest{
		Title:       "Backwards",
		PeriodStart: "2026-06-30",
		PeriodEnd:   "2026-01-01",
		Questions:   []dto.SurveyQuestionRequest{{Text: "Q", Kind: "TEXT"}},
	}

	survey, err := suite.service.CreateSurvey(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(survey)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AppraisalServiceTestSuite) TestAssignSurvey_SkipsAlreadyAssigned() {
	ctx := context.Background()
	surveyID := uuid.NewString()
	assignerID := uuid.NewString()
	alreadyAssignedID := uuid.NewString()
	newEmployeeID := uuid.NewString()

	survey := &domain.Survey{SurveyID: surveyID, IsActive: true}
	existing := []domain.SurveyAssignment{
		{AssignmentID: uuid.NewString(), SurveyID: surveyID, EmployeeID: alreadyAssignedID},
	}
	newEmployee := &domain.Employee{EmployeeID: newEmployeeID}

	suite.mockAppraisalRepo.On("FindSurveyByID", ctx, surveyID).Return(survey, nil).Once()
	suite.mockAppraisalRepo.On("FindAssignmentsBySurvey", ctx, surveyID).Return(existing, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, newEmployeeID).Return(newEmployee, nil).Once()
	suite.mockAppraisalRepo.On("SaveAssignments", ctx, mock.MatchedBy(func(assignments []domain.SurveyAssignment) bool {
		return len(assignments) == 1 && assignments[0].EmployeeID == newEmployeeID
	})).Return(nil).Once()

	assignments, err := suite.service.AssignSurvey(ctx, surveyID, dto.AssignSurveyRequest{
		EmployeeIDs: []string{alreadyAssignedID, newEmployeeID},
	}, assignerID)

	suite.Require().NoError(err)
	suite.Len(assignments, 1)
	suite.mockAppraisalRepo.AssertExpectations(suite.T())
}

func (suite *AppraisalServiceTestSuite) TestAssignSurvey_InactiveSurvey() {
	ctx := context.Background()
	surveyID := uuid.NewString()

	survey := &domain.Survey{SurveyID: surveyID, IsActive: false}
	suite.mockAppraisalRepo.On("FindSurveyByID", ctx, surveyID).Return(survey, nil).Once()

	assignments, err := suite.service.AssignSurvey(ctx, surveyID, dto.AssignSurveyRequest{
		EmployeeIDs: []string{uuid.NewString()},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(assignments)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAppraisalRepo.AssertNotCalled(suite.T(), "SaveAssignments", mock.Anything, mock.Anything)
}

func (suite *AppraisalServiceTestSuite) TestSubmitResponse_Success() {
	ctx := context.Background()
	assignmentID := uuid.NewString()
	surveyID := uuid.NewString()
	employeeID := uuid.NewString()
	ratingQuestionID := uuid.NewString()
	textQuestionID := uuid.NewString()

	assignment := &domain.SurveyAssignment{
		AssignmentID: assignmentID,
		SurveyID:     surveyID,
		EmployeeID:   employeeID,
	}
	survey := &domain.Survey{
		SurveyID: surveyID,
		IsActive: true,
		Questions: []domain.SurveyQuestion{
			{QuestionID: ratingQuestionID, SurveyID: surveyID, Kind: domain.QuestionRating, Position: 1},
			{QuestionID: textQuestionID, SurveyID: surveyID, Kind: domain.QuestionText, Position: 2},
		},
	}

	rating := 4
	req := dto.SubmitResponseRequest{
		Answers: []dto.SurveyAnswerRequest{
			{QuestionID: ratingQuestionID, Rating: &rating},
			{QuestionID: textQuestionID, Text: "Shipped the new payroll export"},
		},
	}

	suite.mockAppraisalRepo.On("FindAssignmentByID", ctx, assignmentID).Return(assignment, nil).Once()
	suite.mockAppraisalRepo.On("FindSurveyByID", ctx, surveyID).Return(survey, nil).Once()
	suite.mockAppraisalRepo.On("SaveResponse", ctx, mock.AnythingOfType("domain.SurveyResponse")).Return(nil).Once()

	response, err := suite.service.SubmitResponse(ctx, assignmentID, employeeID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(response)
	suite.Equal(assignmentID, response.AssignmentID)
	suite.Len(response.Answers, 2)
	suite.mockAppraisalRepo.AssertExpectations(suite.T())
}

func (suite *AppraisalServiceTestSuite) TestSubmitResponse_NotOwnAssignment() {
	ctx := context.Background()
	assignmentID := uuid.NewString()

	assignment := &domain.SurveyAssignment{
		AssignmentID: assignmentID,
		SurveyID:     uuid.NewString(),
		EmployeeID:   uuid.NewString(),
	}
	suite.mockAppraisalRepo.On("FindAssignmentByID", ctx, assignmentID).Return(assignment, nil).Once()

	response, err := suite.service.SubmitResponse(ctx, assignmentID, uuid.NewString(), dto.SubmitResponseRequest{
		Answers: []dto.SurveyAnswerRequest{{QuestionID: uuid.NewString(), Text: "x"}},
	})

	suite.Require().Error(err)
	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AppraisalServiceTestSuite) TestSubmitResponse_AlreadyCompleted() {
	ctx := context.Background()
	assignmentID := uuid.NewString()
	employeeID := uuid.NewString()
	completedAt := time.Now().Add(-time.Hour)

	assignment := &domain.SurveyAssignment{
		AssignmentID: assignmentID,
		SurveyID:     uuid.NewString(),
		EmployeeID:   employeeID,
		CompletedAt:  &completedAt,
	}
	suite.mockAppraisalRepo.On("FindAssignmentByID", ctx, assignmentID).Return(assignment, nil).Once()

	response, err := suite.service.SubmitResponse(ctx, assignmentID, employeeID, dto.SubmitResponseRequest{
		Answers: []dto.SurveyAnswerRequest{{QuestionID: uuid.NewString(), Text: "x"}},
	})

	suite.Require().Error(err)
	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AppraisalServiceTestSuite) TestSubmitResponse_RatingOutOfRange() {
	ctx := context.Background()
	assignmentID := uuid.NewString()
	surveyID := uuid.NewString()
	employeeID := uuid.NewString()
	questionID := uuid.NewString()

	assignment := &domain.SurveyAssignment{
		AssignmentID: assignmentID,
		SurveyID:     surveyID,
		EmployeeID:   employeeID,
	}
	survey := &domain.Survey{
		SurveyID: surveyID,
		Questions: []domain.SurveyQuestion{
			{QuestionID: questionID, SurveyID: surveyID, Kind: domain.QuestionRating, Position: 1},
		},
	}
	rating := 6

	suite.mockAppraisalRepo.On("FindAssignmentByID", ctx, assignmentID).Return(assignment, nil).Once()
	suite.mockAppraisalRepo.On("FindSurveyByID", ctx, surveyID).Return(survey, nil).Once()

	response, err := suite.service.SubmitResponse(ctx, assignmentID, employeeID, dto.SubmitResponseRequest{
		Answers: []dto.SurveyAnswerRequest{{QuestionID: questionID, Rating: &rating}},
	})

	suite.Require().Error(err)
	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAppraisalRepo.AssertNotCalled(suite.T(), "SaveResponse", mock.Anything, mock.Anything)
}

func TestAppraisalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppraisalServiceTestSuite))
}
