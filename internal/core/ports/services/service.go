package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth           AuthSvcFacade
	Employee       EmployeeSvcFacade
	Department     DepartmentSvcFacade
	Leave          LeaveSvcFacade
	LeaveBalance   LeaveBalanceSvcFacade
	Holiday        HolidaySvcFacade
	ServiceCatalog ServiceCatalogSvcFacade
	Trip           TripSvcFacade
	GrabCode       GrabCodeSvcFacade
	Appraisal      AppraisalSvcFacade
}
