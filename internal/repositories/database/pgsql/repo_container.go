package pgsql

import (
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:     newPgxEmployeeRepository(dbPool),
		DepartmentRepo:   newPgxDepartmentRepository(dbPool),
		LeaveTypeRepo:    newPgxLeaveTypeRepository(dbPool),
		LeaveRequestRepo: newPgxLeaveRequestRepository(dbPool),
		HolidayRepo:      newPgxHolidayRepository(dbPool),
		ServiceRepo:      newPgxServiceRepository(dbPool),
		TripRepo:         newPgxTripRepository(dbPool),
		GrabCodeRepo:     newPgxGrabCodeRepository(dbPool),
		AppraisalRepo:    newPgxAppraisalRepository(dbPool),
	}
}
