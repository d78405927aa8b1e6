package services

import (
	"context"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/andikarp/hris-backend/internal/dto"
)

// HolidaySvcFacade defines holiday calendar management.
type HolidaySvcFacade interface {
	CreateHoliday(ctx context.Context, req dto.CreateHolidayRequest, creatorID string) (*domain.Holiday, error)
	GetHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error)
	ListHolidays(ctx context.Context, year int) ([]domain.Holiday, error)
	UpdateHoliday(ctx context.Context, holidayID string, req dto.UpdateHolidayRequest, updaterID string) (*domain.Holiday, error)
	DeleteHoliday(ctx context.Context, holidayID string) error
}

// ServiceCatalogSvcFacade defines transport-service catalog management.
type ServiceCatalogSvcFacade interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorID string) (*domain.Service, error)
	GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context, activeOnly bool) ([]domain.Service, error)
	UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, updaterID string) (*domain.Service, error)
	DeleteService(ctx context.Context, serviceID string) error
}
