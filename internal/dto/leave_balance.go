package dto

import "github.com/shopspring/decimal"

// LeaveBalanceReport is the read-only balance report for one employee.
// CurrentLeaveBalance = TotalBalance + TotalAdded - TotalBalanceUsed.
type LeaveBalanceReport struct {
	EmployeeID          string          `json:"employeeID"`
	FullName            string          `json:"fullName"`
	EmploymentType      string          `json:"employmentType"`
	TotalBalance        decimal.Decimal `json:"totalBalance"` // stored balance
	TotalAdded          decimal.Decimal `json:"totalAdded"`
	TotalBalanceUsed    decimal.Decimal `json:"totalBalanceUsed"`
	CurrentLeaveBalance decimal.Decimal `json:"currentLeaveBalance"`
}

// ListLeaveBalancesResponse wraps balance reports for multiple employees.
type ListLeaveBalancesResponse struct {
	Balances []LeaveBalanceReport `json:"balances"`
}

// CalculateAccrualResponse summarises an accrual batch run.
type CalculateAccrualResponse struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Skipped   int `json:"skipped"`
}
