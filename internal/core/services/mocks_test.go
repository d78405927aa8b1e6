package services_test

import (
	"context"
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockEmployeeRepository is a mock type for the EmployeeRepository interface
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindSubordinates(ctx context.Context, managerID string) ([]domain.Employee, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByDepartment(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, updatedBy string, at time.Time) error {
	args := m.Called(ctx, employeeID, updatedBy, at)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateLeaveBalance(ctx context.Context, employeeID string, balance decimal.Decimal, updatedBy string, at time.Time) error {
	args := m.Called(ctx, employeeID, balance, updatedBy, at)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdatePassword(ctx context.Context, employeeID string, passwordHash string, at time.Time) error {
	args := m.Called(ctx, employeeID, passwordHash, at)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateRefreshToken(ctx context.Context, employeeID string, tokenHash string, expiry *time.Time, at time.Time) error {
	args := m.Called(ctx, employeeID, tokenHash, expiry, at)
	return args.Error(0)
}

// MockLeaveTypeRepository is a mock type for the LeaveTypeRepository interface
type MockLeaveTypeRepository struct {
	mock.Mock
}

func (m *MockLeaveTypeRepository) SaveLeaveType(ctx context.Context, leaveType domain.LeaveType) error {
	args := m.Called(ctx, leaveType)
	return args.Error(0)
}

func (m *MockLeaveTypeRepository) FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error) {
	args := m.Called(ctx, leaveTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveType), args.Error(1)
}

func (m *MockLeaveTypeRepository) FindLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveType), args.Error(1)
}

func (m *MockLeaveTypeRepository) UpdateLeaveType(ctx context.Context, leaveType domain.LeaveType) error {
	args := m.Called(ctx, leaveType)
	return args.Error(0)
}

func (m *MockLeaveTypeRepository) DeleteLeaveType(ctx context.Context, leaveTypeID string) error {
	args := m.Called(ctx, leaveTypeID)
	return args.Error(0)
}

// MockLeaveRequestRepository is a mock type for the LeaveRequestRepository interface
type MockLeaveRequestRepository struct {
	mock.Mock
}

func (m *MockLeaveRequestRepository) SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockLeaveRequestRepository) FindLeaveRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) FindOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, employeeID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) ListLeaveRequests(ctx context.Context, employeeIDs []string, limit int, nextToken *string) ([]domain.LeaveRequest, *string, error) {
	args := m.Called(ctx, employeeIDs, limit, nextToken)
	var requests []domain.LeaveRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.LeaveRequest)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return requests, token, args.Error(2)
}

func (m *MockLeaveRequestRepository) FindApprovedByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) ApproveLeaveRequest(ctx context.Context, requestID string, employeeID string, approverID string, balanceDelta *decimal.Decimal, at time.Time) error {
	args := m.Called(ctx, requestID, employeeID, approverID, balanceDelta, at)
	return args.Error(0)
}

func (m *MockLeaveRequestRepository) RejectLeaveRequest(ctx context.Context, requestID string, approverID string, reason string, at time.Time) error {
	args := m.Called(ctx, requestID, approverID, reason, at)
	return args.Error(0)
}

// MockTripRepository is a mock type for the TripRepository interface
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip domain.BusinessTrip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.BusinessTrip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessTrip), args.Error(1)
}

func (m *MockTripRepository) ListTrips(ctx context.Context, employeeIDs []string, limit int, nextToken *string) ([]domain.BusinessTrip, *string, error) {
	args := m.Called(ctx, employeeIDs, limit, nextToken)
	var trips []domain.BusinessTrip
	if args.Get(0) != nil {
		trips = args.Get(0).([]domain.BusinessTrip)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return trips, token, args.Error(2)
}

func (m *MockTripRepository) UpdateTripStatus(ctx context.Context, tripID string, status domain.RequestStatus, actorID string, reason *string, at time.Time) error {
	args := m.Called(ctx, tripID, status, actorID, reason, at)
	return args.Error(0)
}

// MockServiceRepository is a mock type for the ServiceRepository interface
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) FindServices(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

// MockGrabCodeRepository is a mock type for the GrabCodeRepository interface
type MockGrabCodeRepository struct {
	mock.Mock
}

func (m *MockGrabCodeRepository) SaveGrabCodeRequest(ctx context.Context, request domain.GrabCodeRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockGrabCodeRepository) FindGrabCodeRequestByID(ctx context.Context, requestID string) (*domain.GrabCodeRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GrabCodeRequest), args.Error(1)
}

func (m *MockGrabCodeRepository) ListGrabCodeRequests(ctx context.Context, employeeIDs []string, limit int, nextToken *string) ([]domain.GrabCodeRequest, *string, error) {
	args := m.Called(ctx, employeeIDs, limit, nextToken)
	var requests []domain.GrabCodeRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.GrabCodeRequest)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return requests, token, args.Error(2)
}

func (m *MockGrabCodeRepository) UpdateGrabCodeStatus(ctx context.Context, requestID string, status domain.RequestStatus, actorID string, reason *string, code *string, at time.Time) error {
	args := m.Called(ctx, requestID, status, actorID, reason, code, at)
	return args.Error(0)
}

// MockAppraisalRepository is a mock type for the AppraisalRepository interface
type MockAppraisalRepository struct {
	mock.Mock
}

func (m *MockAppraisalRepository) SaveSurvey(ctx context.Context, survey domain.Survey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockAppraisalRepository) FindSurveyByID(ctx context.Context, surveyID string) (*domain.Survey, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Survey), args.Error(1)
}

func (m *MockAppraisalRepository) FindSurveys(ctx context.Context, activeOnly bool) ([]domain.Survey, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Survey), args.Error(1)
}

func (m *MockAppraisalRepository) UpdateSurvey(ctx context.Context, survey domain.Survey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockAppraisalRepository) DeleteSurvey(ctx context.Context, surveyID string) error {
	args := m.Called(ctx, surveyID)
	return args.Error(0)
}

func (m *MockAppraisalRepository) SaveAssignments(ctx context.Context, assignments []domain.SurveyAssignment) error {
	args := m.Called(ctx, assignments)
	return args.Error(0)
}

func (m *MockAppraisalRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.SurveyAssignment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SurveyAssignment), args.Error(1)
}

func (m *MockAppraisalRepository) FindAssignmentsByEmployee(ctx context.Context, employeeID string) ([]domain.SurveyAssignment, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurveyAssignment), args.Error(1)
}

func (m *MockAppraisalRepository) FindAssignmentsBySurvey(ctx context.Context, surveyID string) ([]domain.SurveyAssignment, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurveyAssignment), args.Error(1)
}

func (m *MockAppraisalRepository) SaveResponse(ctx context.Context, response domain.SurveyResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockAppraisalRepository) FindResponsesBySurvey(ctx context.Context, surveyID string) ([]domain.SurveyResponse, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SurveyResponse), args.Error(1)
}
