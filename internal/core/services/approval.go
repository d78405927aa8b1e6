package services

import (
	"context"
	"fmt"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
)

// authorizeRequestAction checks whether the approver may act on a request
// belonging to targetEmployeeID. Admin and HR act on anyone; a manager only
// on direct subordinates. Acting on one's own request is never allowed.
func authorizeRequestAction(ctx context.Context, employeeRepo portsrepo.EmployeeRepository, approver portssvc.Actor, targetEmployeeID string) error {
	if approver.EmployeeID == targetEmployeeID {
		return fmt.Errorf("%w: cannot act on own request", apperrors.ErrForbidden)
	}
	if approver.Role.CanActOnAnyRequest() {
		return nil
	}
	if approver.Role != domain.RoleManager {
		return apperrors.ErrForbidden
	}

	target, err := employeeRepo.FindEmployeeByID(ctx, targetEmployeeID)
	if err != nil {
		return fmt.Errorf("failed to look up request owner: %w", err)
	}
	if target.ManagerID == nil || *target.ManagerID != approver.EmployeeID {
		return fmt.Errorf("%w: not the manager of this employee", apperrors.ErrForbidden)
	}
	return nil
}

// visibleEmployeeIDs returns the set of employee IDs whose requests the actor
// may list: nil (all) for admin/HR, self plus direct subordinates for a
// manager, self only otherwise.
func visibleEmployeeIDs(ctx context.Context, employeeRepo portsrepo.EmployeeRepository, actor portssvc.Actor) ([]string, error) {
	if actor.Role.CanActOnAnyRequest() {
		return nil, nil
	}
	ids := []string{actor.EmployeeID}
	if actor.Role == domain.RoleManager {
		subordinates, err := employeeRepo.FindSubordinates(ctx, actor.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to list subordinates: %w", err)
		}
		for _, sub := range subordinates {
			ids = append(ids, sub.EmployeeID)
		}
	}
	return ids, nil
}

// canViewRequest reports whether the actor may read a request belonging to
// ownerID.
func canViewRequest(ctx context.Context, employeeRepo portsrepo.EmployeeRepository, actor portssvc.Actor, ownerID string) (bool, error) {
	if actor.EmployeeID == ownerID || actor.Role.CanActOnAnyRequest() {
		return true, nil
	}
	if actor.Role != domain.RoleManager {
		return false, nil
	}
	owner, err := employeeRepo.FindEmployeeByID(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to look up request owner: %w", err)
	}
	return owner.ManagerID != nil && *owner.ManagerID == actor.EmployeeID, nil
}
