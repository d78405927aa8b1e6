package services

import (
	"context"
	"fmt"
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/google/uuid"
)

type serviceCatalogService struct {
	serviceRepo portsrepo.ServiceRepository
}

// NewServiceCatalogService creates a new transport-service catalog service.
func NewServiceCatalogService(serviceRepo portsrepo.ServiceRepository) portssvc.ServiceCatalogSvcFacade {
	return &serviceCatalogService{serviceRepo: serviceRepo}
}

var _ portssvc.ServiceCatalogSvcFacade = (*serviceCatalogService)(nil)

func (s *serviceCatalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorID string) (*domain.Service, error) {
	now := time.Now()
	service := domain.Service{
		ServiceID: uuid.NewString(),
		Name:      req.Name,
		Provider:  req.Provider,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to save service: %w", err)
	}
	return &service, nil
}

func (s *serviceCatalogService) GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find service %s: %w", serviceID, err)
	}
	return service, nil
}

func (s *serviceCatalogService) ListServices(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	services, err := s.serviceRepo.FindServices(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *serviceCatalogService) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, updaterID string) (*domain.Service, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		service.Name = *req.Name
		updated = true
	}
	if req.Provider != nil {
		service.Provider = *req.Provider
		updated = true
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		return service, nil
	}

	service.LastUpdatedAt = time.Now()
	service.LastUpdatedBy = updaterID

	if err := s.serviceRepo.UpdateService(ctx, *service); err != nil {
		return nil, fmt.Errorf("failed to update service %s: %w", serviceID, err)
	}
	return service, nil
}

func (s *serviceCatalogService) DeleteService(ctx context.Context, serviceID string) error {
	if err := s.serviceRepo.DeleteService(ctx, serviceID); err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	return nil
}
