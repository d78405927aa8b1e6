package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/andikarp/hris-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DepartmentService ---
type MockDepartmentService struct {
	mock.Mock
}

func (m *MockDepartmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorID string) (*domain.Department, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentService) GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentService) ListDepartmentMembers(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockDepartmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, updaterID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	args := m.Called(ctx, departmentID)
	return args.Error(0)
}

var _ portssvc.DepartmentSvcFacade = (*MockDepartmentService)(nil)

// --- Test Suite ---
type DepartmentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDepartmentService
	jwtSecret   string
}

func (suite *DepartmentHandlerTestSuite) generateTestToken(employeeID string, role domain.Role) string {
	token, err := utils.GenerateJWT(employeeID, string(role), suite.jwtSecret, time.Hour, "hris-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *DepartmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockService = new(MockDepartmentService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerDepartmentRoutes(v1, suite.mockService)
}

func (suite *DepartmentHandlerTestSuite) doRequest(method, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *DepartmentHandlerTestSuite) TestListDepartments_Success() {
	departments := []domain.Department{
		{DepartmentID: uuid.NewString(), Name: "Engineering"},
		{DepartmentID: uuid.NewString(), Name: "People Ops"},
	}
	suite.mockService.On("ListDepartments", mock.Anything).Return(departments, nil).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleEmployee)
	w := suite.doRequest(http.MethodGet, "/api/v1/departments", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListDepartmentsResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(responseBody.Departments, 2)
	suite.Equal("Engineering", responseBody.Departments[0].Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DepartmentHandlerTestSuite) TestCreateDepartment_AsHR() {
	creatorID := uuid.NewString()
	created := &domain.Department{DepartmentID: uuid.NewString(), Name: "Finance"}
	suite.mockService.On("CreateDepartment", mock.Anything, mock.MatchedBy(func(req dto.CreateDepartmentRequest) bool {
		return req.Name == "Finance"
	}), creatorID).Return(created, nil).Once()

	token := suite.generateTestToken(creatorID, domain.RoleHR)
	w := suite.doRequest(http.MethodPost, "/api/v1/departments", dto.CreateDepartmentRequest{Name: "Finance"}, token)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DepartmentHandlerTestSuite) TestCreateDepartment_EmployeeForbidden() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleEmployee)
	w := suite.doRequest(http.MethodPost, "/api/v1/departments", dto.CreateDepartmentRequest{Name: "Shadow Org"}, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateDepartment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepartmentHandlerTestSuite) TestCreateDepartment_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/departments", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *DepartmentHandlerTestSuite) TestDeleteDepartment_StillHasEmployees() {
	departmentID := uuid.NewString()
	suite.mockService.On("DeleteDepartment", mock.Anything, departmentID).
		Return(fmt.Errorf("%w: department still has employees", apperrors.ErrConflict)).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)
	w := suite.doRequest(http.MethodDelete, "/api/v1/departments/"+departmentID, nil, token)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DepartmentHandlerTestSuite) TestGetDepartment_NotFound() {
	departmentID := uuid.NewString()
	suite.mockService.On("GetDepartmentByID", mock.Anything, departmentID).
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleEmployee)
	w := suite.doRequest(http.MethodGet, "/api/v1/departments/"+departmentID, nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestDepartmentHandler(t *testing.T) {
	suite.Run(t, new(DepartmentHandlerTestSuite))
}
