package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role determines what an authenticated employee may do.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// CanActOnAnyRequest reports whether the role may approve or reject requests
// belonging to any employee. Managers are restricted to direct subordinates.
func (r Role) CanActOnAnyRequest() bool {
	return r == RoleAdmin || r == RoleHR
}

// EmploymentType distinguishes permanent staff from contractors. The type
// drives the monthly leave accrual rate.
type EmploymentType string

const (
	EmploymentPermanent EmploymentType = "PERMANENT"
	EmploymentContract  EmploymentType = "CONTRACT"
)

var (
	permanentAccrualRate = decimal.RequireFromString("1.25")
	contractAccrualRate  = decimal.RequireFromString("1.00")
)

// MonthlyAccrualRate returns the leave days accrued per month of employment.
func (t EmploymentType) MonthlyAccrualRate() decimal.Decimal {
	if t == EmploymentPermanent {
		return permanentAccrualRate
	}
	return contractAccrualRate
}

// Employee represents a member of staff. Employees are never hard deleted,
// only deactivated.
type Employee struct {
	EmployeeID     string          `json:"employeeID"`
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"-"`
	Role           Role            `json:"role"`
	EmploymentType EmploymentType  `json:"employmentType"`
	StartDate      time.Time       `json:"startDate"`
	DepartmentID   *string         `json:"departmentID,omitempty"`
	ManagerID      *string         `json:"managerID,omitempty"`
	LeaveBalance   decimal.Decimal `json:"leaveBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
