package repositories

import (
	"context"

	"github.com/andikarp/hris-backend/internal/core/domain"
)

// HolidayRepository defines persistence operations for the holiday calendar.
type HolidayRepository interface {
	// SaveHoliday returns apperrors.ErrDuplicate when a holiday already
	// exists on the same date.
	SaveHoliday(ctx context.Context, holiday domain.Holiday) error
	FindHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error)
	FindHolidaysByYear(ctx context.Context, year int) ([]domain.Holiday, error)
	UpdateHoliday(ctx context.Context, holiday domain.Holiday) error
	DeleteHoliday(ctx context.Context, holidayID string) error
}

// ServiceRepository defines persistence operations for the transport-service
// catalog.
type ServiceRepository interface {
	SaveService(ctx context.Context, service domain.Service) error
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	FindServices(ctx context.Context, activeOnly bool) ([]domain.Service, error)
	UpdateService(ctx context.Context, service domain.Service) error
	DeleteService(ctx context.Context, serviceID string) error
}
