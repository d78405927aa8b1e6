package utils

import (
	"math"
	"time"
)

// avgDaysPerMonth is the divisor used to derive elapsed employment months
// from elapsed days. This is deliberately not calendar-month arithmetic; the
// accrual policy is defined in terms of this approximation.
const avgDaysPerMonth = 30.44

// BusinessDaysBetween counts the weekdays (Mon-Fri) in [start, end]
// inclusive. Holidays are not excluded; the holiday calendar is reference
// data only in this system. Returns 0 when end precedes start.
func BusinessDaysBetween(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

// MonthsSinceJoin returns floor(elapsed days / 30.44) between startDate and
// now. The result is negative for future start dates; callers clamp as
// needed.
func MonthsSinceJoin(startDate, now time.Time) int {
	days := now.Sub(startDate).Hours() / 24
	return int(math.Floor(days / avgDaysPerMonth))
}

// EligibleForCurrentMonthAccrual applies the 16th-of-month cutoff rule: an
// employee who started in the current calendar month accrues only if they
// started on or before the 16th. Anyone who started in a prior month always
// accrues. The rule is evaluated against now only; past months are never
// re-evaluated.
func EligibleForCurrentMonthAccrual(startDate, now time.Time) bool {
	if startDate.Year() == now.Year() && startDate.Month() == now.Month() {
		return startDate.Day() <= 16
	}
	return startDate.Before(now)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
