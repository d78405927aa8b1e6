package services

import (
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.EmployeeRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Department = NewDepartmentService(repos.DepartmentRepo, repos.EmployeeRepo)
	container.Leave = NewLeaveService(repos.LeaveTypeRepo, repos.LeaveRequestRepo, repos.EmployeeRepo)
	container.LeaveBalance = NewLeaveBalanceService(repos.EmployeeRepo, repos.LeaveTypeRepo, repos.LeaveRequestRepo)
	container.Holiday = NewHolidayService(repos.HolidayRepo)
	container.ServiceCatalog = NewServiceCatalogService(repos.ServiceRepo)
	container.Trip = NewTripService(repos.TripRepo, repos.EmployeeRepo)
	container.GrabCode = NewGrabCodeService(repos.GrabCodeRepo, repos.ServiceRepo, repos.EmployeeRepo)
	container.Appraisal = NewAppraisalService(repos.AppraisalRepo, repos.EmployeeRepo)

	return container
}
