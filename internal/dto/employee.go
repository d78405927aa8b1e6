package dto

import (
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest carries the fields needed to create an employee.
type CreateEmployeeRequest struct {
	FullName       string  `json:"fullName" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	Role           string  `json:"role" binding:"required,oneof=ADMIN HR MANAGER EMPLOYEE"`
	EmploymentType string  `json:"employmentType" binding:"required,oneof=PERMANENT CONTRACT"`
	StartDate      string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	DepartmentID   *string `json:"departmentID"`
	ManagerID      *string `json:"managerID"`
}

// UpdateEmployeeRequest carries the updatable fields of an employee.
// Pointers differentiate omitted fields from zero values.
type UpdateEmployeeRequest struct {
	FullName       *string `json:"fullName"`
	Role           *string `json:"role" binding:"omitempty,oneof=ADMIN HR MANAGER EMPLOYEE"`
	EmploymentType *string `json:"employmentType" binding:"omitempty,oneof=PERMANENT CONTRACT"`
	DepartmentID   *string `json:"departmentID"`
	ManagerID      *string `json:"managerID"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// EmployeeResponse is the API representation of an employee.
type EmployeeResponse struct {
	EmployeeID     string          `json:"employeeID"`
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	Role           string          `json:"role"`
	EmploymentType string          `json:"employmentType"`
	StartDate      string          `json:"startDate"`
	DepartmentID   *string         `json:"departmentID,omitempty"`
	ManagerID      *string         `json:"managerID,omitempty"`
	LeaveBalance   decimal.Decimal `json:"leaveBalance"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to its API representation.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:     e.EmployeeID,
		FullName:       e.FullName,
		Email:          e.Email,
		Role:           string(e.Role),
		EmploymentType: string(e.EmploymentType),
		StartDate:      e.StartDate.Format("2006-01-02"),
		DepartmentID:   e.DepartmentID,
		ManagerID:      e.ManagerID,
		LeaveBalance:   e.LeaveBalance,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
	}
}

// ToListEmployeesResponse converts a slice of domain.Employee.
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: out}
}
