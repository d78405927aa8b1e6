package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LeaveBalanceServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo     *MockEmployeeRepository
	mockLeaveTypeRepo    *MockLeaveTypeRepository
	mockLeaveRequestRepo *MockLeaveRequestRepository
	service              portssvc.LeaveBalanceSvcFacade
}

func (suite *LeaveBalanceServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockLeaveTypeRepo = new(MockLeaveTypeRepository)
	suite.mockLeaveRequestRepo = new(MockLeaveRequestRepository)
	suite.service = services.NewLeaveBalanceService(suite.mockEmployeeRepo, suite.mockLeaveTypeRepo, suite.mockLeaveRequestRepo)
}

// employeeJoinedMonthsAgo builds an active employee whose start date lies the
// given number of 30.44-day months in the past.
func employeeJoinedMonthsAgo(months float64, employmentType domain.EmploymentType, balance decimal.Decimal) domain.Employee {
	days := int(months * 30.44)
	return domain.Employee{
		EmployeeID:     uuid.NewString(),
		FullName:       "Test Employee",
		EmploymentType: employmentType,
		StartDate:      time.Now().AddDate(0, 0, -days),
		LeaveBalance:   balance,
		IsActive:       true,
	}
}

func (suite *LeaveBalanceServiceTestSuite) TestCalculateAccruals_PermanentRate() {
	ctx := context.Background()
	// Ten months of service at 1.25 days/month prescribes 12.5 days.
	employee := employeeJoinedMonthsAgo(10.5, domain.EmploymentPermanent, decimal.NewFromInt(5))

	suite.mockEmployeeRepo.On("FindActiveEmployees", ctx).Return([]domain.Employee{employee}, nil).Once()
	suite.mockEmployeeRepo.On("UpdateLeaveBalance", ctx, employee.EmployeeID,
		mock.MatchedBy(func(balance decimal.Decimal) bool {
			return balance.Equal(decimal.NewFromFloat(12.5))
		}), "accrual-job", mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.CalculateAccruals(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Processed)
	suite.Equal(1, result.Updated)
	suite.Equal(0, result.Skipped)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *LeaveBalanceServiceTestSuite) TestCalculateAccruals_ContractRate() {
	ctx := context.Background()
	// Ten months of service at 1.00 day/month prescribes 10 days.
	employee := employeeJoinedMonthsAgo(10.5, domain.EmploymentContract, decimal.Zero)

	suite.mockEmployeeRepo.On("FindActiveEmployees", ctx).Return([]domain.Employee{employee}, nil).Once()
	suite.mockEmployeeRepo.On("UpdateLeaveBalance", ctx, employee.EmployeeID,
		mock.MatchedBy(func(balance decimal.Decimal) bool {
			return balance.Equal(decimal.NewFromInt(10))
		}), "accrual-job", mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.CalculateAccruals(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Updated)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *LeaveBalanceServiceTestSuite) TestCalculateAccruals_UnchangedBalanceSkipped() {
	ctx := context.Background()
	// Stored balance already equals the prescription, so no write happens.
	employee := employeeJoinedMonthsAgo(10.5, domain.EmploymentContract, decimal.NewFromInt(10))

	suite.mockEmployeeRepo.On("FindActiveEmployees", ctx).Return([]domain.Employee{employee}, nil).Once()

	result, err := suite.service.CalculateAccruals(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Processed)
	suite.Equal(0, result.Updated)
	suite.Equal(0, result.Skipped)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "UpdateLeaveBalance",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveBalanceServiceTestSuite) TestCalculateAccruals_NewStarterNotYetEligible() {
	ctx := context.Background()
	// An employee hired this month after the 16th keeps a zero prescription.
	// Anchor the start date so the scenario only arises when today is past the
	// 16th; otherwise fall back to a same-day hire which also prescribes zero.
	now := time.Now()
	startDay := 17
	if now.Day() < 17 {
		startDay = now.Day()
	}
	employee := domain.Employee{
		EmployeeID:     uuid.NewString(),
		EmploymentType: domain.EmploymentPermanent,
		StartDate:      time.Date(now.Year(), now.Month(), startDay, 0, 0, 0, 0, time.UTC),
		LeaveBalance:   decimal.Zero,
		IsActive:       true,
	}

	suite.mockEmployeeRepo.On("FindActiveEmployees", ctx).Return([]domain.Employee{employee}, nil).Once()

	result, err := suite.service.CalculateAccruals(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Processed)
	suite.Equal(0, result.Updated)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "UpdateLeaveBalance",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveBalanceServiceTestSuite) TestCalculateAccruals_PersistFailureSkipsEmployee() {
	ctx := context.Background()
	failing := employeeJoinedMonthsAgo(5.5, domain.EmploymentContract, decimal.Zero)
	healthy := employeeJoinedMonthsAgo(3.5, domain.EmploymentContract, decimal.Zero)

	suite.mockEmployeeRepo.On("FindActiveEmployees", ctx).Return([]domain.Employee{failing, healthy}, nil).Once()
	suite.mockEmployeeRepo.On("UpdateLeaveBalance", ctx, failing.EmployeeID,
		mock.Anything, "accrual-job", mock.AnythingOfType("time.Time")).Return(fmt.Errorf("connection reset")).Once()
	suite.mockEmployeeRepo.On("UpdateLeaveBalance", ctx, healthy.EmployeeID,
		mock.Anything, "accrual-job", mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.CalculateAccruals(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, result.Processed)
	suite.Equal(1, result.Updated)
	suite.Equal(1, result.Skipped)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *LeaveBalanceServiceTestSuite) TestGetBalanceReport_Aggregation() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	annualTypeID := uuid.NewString()
	overtimeTypeID := uuid.NewString()

	employee := &domain.Employee{
		EmployeeID:     employeeID,
		FullName:       "Report Target",
		EmploymentType: domain.EmploymentPermanent,
		LeaveBalance:   decimal.NewFromInt(12),
		IsActive:       true,
	}
	leaveTypes := []domain.LeaveType{
		{LeaveTypeID: annualTypeID, Name: domain.AnnualLeaveTypeName, Polarity: domain.PolaritySubtraction},
		{LeaveTypeID: overtimeTypeID, Name: "Overtime Credit", Polarity: domain.PolarityAddition, DayValue: decimal.NewFromInt(1)},
	}
	approved := []domain.LeaveRequest{
		{LeaveTypeID: annualTypeID, DaysRequested: decimal.NewFromInt(3), Status: domain.StatusApproved},
		{LeaveTypeID: overtimeTypeID, DaysRequested: decimal.NewFromInt(1), Status: domain.StatusApproved},
		{LeaveTypeID: annualTypeID, DaysRequested: decimal.NewFromInt(2), Status: domain.StatusApproved},
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(employee, nil).Once()
	suite.mockLeaveTypeRepo.On("FindLeaveTypes", ctx).Return(leaveTypes, nil).Once()
	suite.mockLeaveRequestRepo.On("FindApprovedByEmployee", ctx, employeeID).Return(approved, nil).Once()

	report, err := suite.service.GetBalanceReport(ctx, employeeID)

	suite.Require().NoError(err)
	suite.Equal(employeeID, report.EmployeeID)
	suite.True(report.TotalBalance.Equal(decimal.NewFromInt(12)), "stored balance: %s", report.TotalBalance)
	suite.True(report.TotalAdded.Equal(decimal.NewFromInt(1)), "added: %s", report.TotalAdded)
	suite.True(report.TotalBalanceUsed.Equal(decimal.NewFromInt(5)), "used: %s", report.TotalBalanceUsed)
	suite.True(report.CurrentLeaveBalance.Equal(decimal.NewFromInt(8)), "current: %s", report.CurrentLeaveBalance)
}

func (suite *LeaveBalanceServiceTestSuite) TestGetBalanceReportFor_ManagerSeesSubordinate() {
	ctx := context.Background()
	managerID := uuid.NewString()
	subordinate := &domain.Employee{
		EmployeeID:     uuid.NewString(),
		FullName:       "Direct Report",
		EmploymentType: domain.EmploymentContract,
		ManagerID:      &managerID,
		LeaveBalance:   decimal.NewFromInt(4),
		IsActive:       true,
	}
	actor := portssvc.Actor{EmployeeID: managerID, Role: domain.RoleManager}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, subordinate.EmployeeID).Return(subordinate, nil).Twice()
	suite.mockLeaveTypeRepo.On("FindLeaveTypes", ctx).Return([]domain.LeaveType{}, nil).Once()
	suite.mockLeaveRequestRepo.On("FindApprovedByEmployee", ctx, subordinate.EmployeeID).Return([]domain.LeaveRequest{}, nil).Once()

	report, err := suite.service.GetBalanceReportFor(ctx, actor, subordinate.EmployeeID)

	suite.Require().NoError(err)
	suite.Equal(subordinate.EmployeeID, report.EmployeeID)
	suite.True(report.CurrentLeaveBalance.Equal(decimal.NewFromInt(4)))
}

func (suite *LeaveBalanceServiceTestSuite) TestGetBalanceReportFor_UnrelatedEmployeeForbidden() {
	ctx := context.Background()
	otherManagerID := uuid.NewString()
	target := &domain.Employee{
		EmployeeID: uuid.NewString(),
		ManagerID:  &otherManagerID,
		IsActive:   true,
	}
	actor := portssvc.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleManager}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, target.EmployeeID).Return(target, nil).Once()

	_, err := suite.service.GetBalanceReportFor(ctx, actor, target.EmployeeID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLeaveRequestRepo.AssertNotCalled(suite.T(), "FindApprovedByEmployee", mock.Anything, mock.Anything)
}

func TestLeaveBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveBalanceServiceTestSuite))
}
