package services

import (
	"context"
	"fmt"
	"time"

	"github.com/andikarp/hris-backend/internal/apperrors"
	"github.com/andikarp/hris-backend/internal/core/domain"
	portsrepo "github.com/andikarp/hris-backend/internal/core/ports/repositories"
	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/google/uuid"
)

type holidayService struct {
	holidayRepo portsrepo.HolidayRepository
}

// NewHolidayService creates a new holiday service.
func NewHolidayService(holidayRepo portsrepo.HolidayRepository) portssvc.HolidaySvcFacade {
	return &holidayService{holidayRepo: holidayRepo}
}

var _ portssvc.HolidaySvcFacade = (*holidayService)(nil)

func (s *holidayService) CreateHoliday(ctx context.Context, req dto.CreateHolidayRequest, creatorID string) (*domain.Holiday, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
	}

	now := time.Now()
	holiday := domain.Holiday{
		HolidayID: uuid.NewString(),
		Name:      req.Name,
		Date:      date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.holidayRepo.SaveHoliday(ctx, holiday); err != nil {
		return nil, fmt.Errorf("failed to save holiday: %w", err)
	}
	return &holiday, nil
}

func (s *holidayService) GetHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error) {
	holiday, err := s.holidayRepo.FindHolidayByID(ctx, holidayID)
	if err != nil {
		return nil, fmt.Errorf("failed to find holiday %s: %w", holidayID, err)
	}
	return holiday, nil
}

func (s *holidayService) ListHolidays(ctx context.Context, year int) ([]domain.Holiday, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	holidays, err := s.holidayRepo.FindHolidaysByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays for %d: %w", year, err)
	}
	return holidays, nil
}

func (s *holidayService) UpdateHoliday(ctx context.Context, holidayID string, req dto.UpdateHolidayRequest, updaterID string) (*domain.Holiday, error) {
	holiday, err := s.holidayRepo.FindHolidayByID(ctx, holidayID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		holiday.Name = *req.Name
		updated = true
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
		}
		holiday.Date = date
		updated = true
	}
	if !updated {
		return holiday, nil
	}

	holiday.LastUpdatedAt = time.Now()
	holiday.LastUpdatedBy = updaterID

	if err := s.holidayRepo.UpdateHoliday(ctx, *holiday); err != nil {
		return nil, fmt.Errorf("failed to update holiday %s: %w", holidayID, err)
	}
	return holiday, nil
}

func (s *holidayService) DeleteHoliday(ctx context.Context, holidayID string) error {
	if err := s.holidayRepo.DeleteHoliday(ctx, holidayID); err != nil {
		return fmt.Errorf("failed to delete holiday %s: %w", holidayID, err)
	}
	return nil
}
