package dto

import (
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
)

// CreateDepartmentRequest carries the fields needed to create a department.
type CreateDepartmentRequest struct {
	Name   string  `json:"name" binding:"required"`
	HeadID *string `json:"headID"`
}

// UpdateDepartmentRequest carries the updatable fields of a department.
type UpdateDepartmentRequest struct {
	Name   *string `json:"name"`
	HeadID *string `json:"headID"`
}

// DepartmentResponse is the API representation of a department.
type DepartmentResponse struct {
	DepartmentID string    `json:"departmentID"`
	Name         string    `json:"name"`
	HeadID       *string   `json:"headID,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListDepartmentsResponse wraps the list of departments.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// ToDepartmentResponse converts a domain.Department.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		HeadID:       d.HeadID,
		CreatedAt:    d.CreatedAt,
	}
}

// ToListDepartmentsResponse converts a slice of domain.Department.
func ToListDepartmentsResponse(departments []domain.Department) ListDepartmentsResponse {
	out := make([]DepartmentResponse, len(departments))
	for i := range departments {
		out[i] = ToDepartmentResponse(&departments[i])
	}
	return ListDepartmentsResponse{Departments: out}
}
