package repositories

// RepositoryProvider aggregates all repository implementations so they can be
// constructed once and handed to the service container.
type RepositoryProvider struct {
	EmployeeRepo     EmployeeRepository
	DepartmentRepo   DepartmentRepository
	LeaveTypeRepo    LeaveTypeRepository
	LeaveRequestRepo LeaveRequestRepository
	HolidayRepo      HolidayRepository
	ServiceRepo      ServiceRepository
	TripRepo         TripRepository
	GrabCodeRepo     GrabCodeRepository
	AppraisalRepo    AppraisalRepository
}
