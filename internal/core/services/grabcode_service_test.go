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

type GrabCodeServiceTestSuite struct {
	suite.Suite
	mockGrabCodeRepo *MockGrabCodeRepository
	mockServiceRepo  *MockServiceRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.GrabCodeSvcFacade
}

func (suite *GrabCodeServiceTestSuite) SetupTest() {
	suite.mockGrabCodeRepo = new(MockGrabCodeRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewGrabCodeService(suite.mockGrabCodeRepo, suite.mockServiceRepo, suite.mockEmployeeRepo)
}

func grabCodeRequestDTO(serviceID string) dto.CreateGrabCodeRequestRequest {
	return dto.CreateGrabCodeRequestRequest{
		ServiceID:      serviceID,
		TravelDate:     futureDate(3),
		PickupLocation: "Head office lobby",
		Destination:    "Client site",
		Purpose:        "Contract signing",
	}
}

func (suite *GrabCodeServiceTestSuite) TestSubmitGrabCodeRequest_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	serviceID := uuid.NewString()

	catalogService := &domain.Service{ServiceID: serviceID, Name: "GrabCar", IsActive: true}
	suite.mockServiceRepo.On("FindServiceByID", ctx, serviceID).Return(catalogService, nil).Once()
	suite.mockGrabCodeRepo.On("SaveGrabCodeRequest", ctx, mock.AnythingOfType("domain.GrabCodeRequest")).Return(nil).Once()

	request, err := suite.service.SubmitGrabCodeRequest(ctx, employeeID, grabCodeRequestDTO(serviceID))

	suite.Require().NoError(err)
	suite.Require().NotNil(request)
	suite.Equal(domain.StatusPending, request.Status)
	suite.Nil(request.Code)
	suite.mockGrabCodeRepo.AssertExpectations(suite.T())
}

func (suite *GrabCodeServiceTestSuite) TestSubmitGrabCodeRequest_InactiveService() {
	ctx := context.Background()
	serviceID := uuid.NewString()

	catalogService := &domain.Service{ServiceID: serviceID, Name: "GrabBike", IsActive: false}
	suite.mockServiceRepo.On("FindServiceByID", ctx, serviceID).Return(catalogService, nil).Once()

	request, err := suite.service.SubmitGrabCodeRequest(ctx, uuid.NewString(), grabCodeRequestDTO(serviceID))

	suite.Require().Error(err)
	suite.Nil(request)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGrabCodeRepo.AssertNotCalled(suite.T(), "SaveGrabCodeRequest", mock.Anything, mock.Anything)
}

func (suite *GrabCodeServiceTestSuite) TestApproveGrabCodeRequest_GeneratesCode() {
	ctx := context.Background()
	requestID := uuid.NewString()
	employeeID := uuid.NewString()
	approver := portssvc.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleHR}

	request := &domain.GrabCodeRequest{
		RequestID:  requestID,
		EmployeeID: employeeID,
		Status:     domain.StatusPending,
	}
	suite.mockGrabCodeRepo.On("FindGrabCodeRequestByID", ctx, requestID).Return(request, nil).Once()
	suite.mockGrabCodeRepo.On("UpdateGrabCodeStatus", ctx, requestID, domain.StatusApproved, approver.EmployeeID,
		(*string)(nil), mock.MatchedBy(func(code *string) bool {
			return code != nil && *code != ""
		}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	approved, err := suite.service.ApproveGrabCodeRequest(ctx, requestID, approver)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, approved.Status)
	suite.Require().NotNil(approved.Code)
	suite.NotEmpty(*approved.Code)
	suite.mockGrabCodeRepo.AssertExpectations(suite.T())
}

func (suite *GrabCodeServiceTestSuite) TestRejectGrabCodeRequest_RequiresReason() {
	ctx := context.Background()
	approver := portssvc.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleAdmin}

	rejected, err := suite.service.RejectGrabCodeRequest(ctx, uuid.NewString(), approver, "")

	suite.Require().Error(err)
	suite.Nil(rejected)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GrabCodeServiceTestSuite) TestApproveGrabCodeRequest_AlreadyDecided() {
	ctx := context.Background()
	requestID := uuid.NewString()
	approver := portssvc.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleHR}

	request := &domain.GrabCodeRequest{
		RequestID:  requestID,
		EmployeeID: uuid.NewString(),
		Status:     domain.StatusRejected,
	}
	suite.mockGrabCodeRepo.On("FindGrabCodeRequestByID", ctx, requestID).Return(request, nil).Once()

	approved, err := suite.service.ApproveGrabCodeRequest(ctx, requestID, approver)

	suite.Require().Error(err)
	suite.Nil(approved)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestGrabCodeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GrabCodeServiceTestSuite))
}
