package services_test

import (
	"context"
	"testing"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/core/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func dtoCreateTrip(startDate, endDate string) dto.CreateTripRequest {
	return dto.CreateTripRequest{
		Destination: "Surabaya",
		Purpose:     "Quarterly branch review",
		StartDate:   startDate,
		EndDate:     endDate,
	}
}

func dtoTripEvent(name, date string) dto.TripEventRequest {
	return dto.TripEventRequest{Name: name, Date: date}
}

type TripServiceTestSuite struct {
	suite.Suite
	mockTripRepo     *MockTripRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.TripSvcFacade
}

func (suite *TripServiceTestSuite) SetupTest() {
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewTripService(suite.mockTripRepo, suite.mockEmployeeRepo)
}

func (suite *TripServiceTestSuite) TestSubmitTrip_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	participantID := uuid.NewString()
	req := dtoCreateTrip(futureDate(10), futureDate(12))
	req.Events = append(req.Events, dtoTripEvent("Client workshop", futureDate(11)))
	req.Participants = []string{participantID}

	participant := &domain.Employee{EmployeeID: participantID}
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, participantID).Return(participant, nil).Once()
	suite.mockTripRepo.On("SaveTrip", ctx, mock.AnythingOfType("domain.BusinessTrip")).Return(nil).Once()

	trip, err := suite.service.SubmitTrip(ctx, employeeID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(trip)
	suite.Equal(domain.StatusPending, trip.Status)
	suite.Require().Len(trip.Events, 1)
	suite.NotEmpty(trip.Events[0].EventID)
	suite.Equal(trip.TripID, trip.Events[0].TripID)
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestSubmitTrip_EventOutsideRange() {
	ctx := context.Background()
	req := dtoCreateTrip(futureDate(10), futureDate(12))
	req.Events = append(req.Events, dtoTripEvent("Stray dinner", futureDate(15)))

	trip, err := suite.service.SubmitTrip(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(trip)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "SaveTrip", mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestApproveTrip_ByManager() {
	ctx := context.Background()
	tripID := uuid.NewString()
	employeeID := uuid.NewString()
	approver := portssvc.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleManager}

	trip := &domain.BusinessTrip{TripID: tripID, EmployeeID: employeeID, Status: domain.StatusPending}
	owner := &domain.Employee{EmployeeID: employeeID, ManagerID: &approver.EmployeeID}

	suite.mockTripRepo.On("FindTripByID", ctx, tripID).Return(trip, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(owner, nil).Once()
	suite.mockTripRepo.On("UpdateTripStatus", ctx, tripID, domain.StatusApproved, approver.EmployeeID,
		(*string)(nil), mock.AnythingOfType("time.Time")).Return(nil).Once()

	approved, err := suite.service.ApproveTrip(ctx, tripID, approver)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, approved.Status)
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestRejectTrip_EmptyReason() {
	ctx := context.Background()
	approver := portssvc.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleHR}

	rejected, err := suite.service.RejectTrip(ctx, uuid.NewString(), approver, "   ")

	suite.Require().Error(err)
	suite.Nil(rejected)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "FindTripByID", mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestCancelTrip_OwnerOnly() {
	ctx := context.Background()
	tripID := uuid.NewString()
	ownerID := uuid.NewString()
	stranger := portssvc.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee}

	trip := &domain.BusinessTrip{TripID: tripID, EmployeeID: ownerID, Status: domain.StatusPending}
	suite.mockTripRepo.On("FindTripByID", ctx, tripID).Return(trip, nil).Once()

	cancelled, err := suite.service.CancelTrip(ctx, tripID, stranger)

	suite.Require().Error(err)
	suite.Nil(cancelled)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "UpdateTripStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestCancelTrip_Success() {
	ctx := context.Background()
	tripID := uuid.NewString()
	ownerID := uuid.NewString()
	owner := portssvc.Actor{EmployeeID: ownerID, Role: domain.RoleEmployee}

	trip := &domain.BusinessTrip{TripID: tripID, EmployeeID: ownerID, Status: domain.StatusPending}
	suite.mockTripRepo.On("FindTripByID", ctx, tripID).Return(trip, nil).Once()
	suite.mockTripRepo.On("UpdateTripStatus", ctx, tripID, domain.StatusCancelled, ownerID,
		(*string)(nil), mock.AnythingOfType("time.Time")).Return(nil).Once()

	cancelled, err := suite.service.CancelTrip(ctx, tripID, owner)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, cancelled.Status)
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestCancelTrip_AlreadyApproved() {
	ctx := context.Background()
	tripID := uuid.NewString()
	ownerID := uuid.NewString()
	owner := portssvc.Actor{EmployeeID: ownerID, Role: domain.RoleEmployee}

	trip := &domain.BusinessTrip{TripID: tripID, EmployeeID: ownerID, Status: domain.StatusApproved}
	suite.mockTripRepo.On("FindTripByID", ctx, tripID).Return(trip, nil).Once()

	cancelled, err := suite.service.CancelTrip(ctx, tripID, owner)

	suite.Require().Error(err)
	suite.Nil(cancelled)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestTripServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TripServiceTestSuite))
}
