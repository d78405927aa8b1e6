package utils_test

import (
	"testing"
	"time"

	"github.com/andikarp/hris-backend/internal/utils"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDaysBetween(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"full work week", date(2024, time.January, 1), date(2024, time.January, 5), 5},
		{"weekend only", date(2024, time.January, 6), date(2024, time.January, 7), 0},
		{"single weekday", date(2024, time.January, 3), date(2024, time.January, 3), 1},
		{"single saturday", date(2024, time.January, 6), date(2024, time.January, 6), 0},
		{"spanning a weekend", date(2024, time.January, 5), date(2024, time.January, 8), 2},
		{"two full weeks", date(2024, time.January, 1), date(2024, time.January, 14), 10},
		{"end before start", date(2024, time.January, 5), date(2024, time.January, 1), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.BusinessDaysBetween(tc.start, tc.end))
		})
	}
}

func TestBusinessDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, utils.BusinessDaysBetween(start, end))
}

func TestMonthsSinceJoin(t *testing.T) {
	now := date(2024, time.June, 15)

	testCases := []struct {
		name      string
		startDate time.Time
		expected  int
	}{
		{"same day", now, 0},
		{"under one month", date(2024, time.May, 20), 0},
		{"just over one month", date(2024, time.May, 10), 1},
		{"roughly ten months", date(2023, time.August, 10), 10},
		{"exactly 304 days is nine months", now.AddDate(0, 0, -304), 9},
		{"future start is negative", date(2024, time.July, 20), -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.MonthsSinceJoin(tc.startDate, now))
		})
	}
}

func TestEligibleForCurrentMonthAccrual(t *testing.T) {
	now := date(2024, time.June, 30)

	testCases := []struct {
		name      string
		startDate time.Time
		expected  bool
	}{
		{"started on the 16th this month", date(2024, time.June, 16), true},
		{"started on the 17th this month", date(2024, time.June, 17), false},
		{"started on the 1st this month", date(2024, time.June, 1), true},
		{"started last month after the 16th", date(2024, time.May, 25), true},
		{"started years ago", date(2020, time.March, 2), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.EligibleForCurrentMonthAccrual(tc.startDate, now))
		})
	}
}
