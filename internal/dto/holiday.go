package dto

import "github.com/andikarp/hris-backend/internal/core/domain"

// CreateHolidayRequest carries the fields needed to create a holiday.
type CreateHolidayRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateHolidayRequest carries the updatable fields of a holiday.
type UpdateHolidayRequest struct {
	Name *string `json:"name"`
	Date *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListHolidaysParams defines query parameters for listing holidays.
type ListHolidaysParams struct {
	Year int `form:"year"`
}

// HolidayResponse is the API representation of a holiday.
type HolidayResponse struct {
	HolidayID string `json:"holidayID"`
	Name      string `json:"name"`
	Date      string `json:"date"`
}

// ListHolidaysResponse wraps the list of holidays.
type ListHolidaysResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// ToHolidayResponse converts a domain.Holiday.
func ToHolidayResponse(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		HolidayID: h.HolidayID,
		Name:      h.Name,
		Date:      h.Date.Format("2006-01-02"),
	}
}

// ToListHolidaysResponse converts a slice of domain.Holiday.
func ToListHolidaysResponse(holidays []domain.Holiday) ListHolidaysResponse {
	out := make([]HolidayResponse, len(holidays))
	for i := range holidays {
		out[i] = ToHolidayResponse(&holidays[i])
	}
	return ListHolidaysResponse{Holidays: out}
}
