package domain

import "time"

// Holiday is a named calendar date. Holidays are reference data only; the
// business-day calculation used for leave requests does not consult them.
type Holiday struct {
	HolidayID string    `json:"holidayID"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"` // unique per calendar day
	AuditFields
}
