package domain

// Department groups employees under an optional head.
type Department struct {
	DepartmentID string  `json:"departmentID"`
	Name         string  `json:"name"`
	HeadID       *string `json:"headID,omitempty"` // EmployeeID of the department head
	AuditFields
}
