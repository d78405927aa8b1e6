package domain_test

import (
	"testing"
	"time"

	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.RequestStatus
		to   domain.RequestStatus
		want bool
	}{
		{"pending to approved", domain.StatusPending, domain.StatusApproved, true},
		{"pending to rejected", domain.StatusPending, domain.StatusRejected, true},
		{"pending to cancelled", domain.StatusPending, domain.StatusCancelled, true},
		{"pending to pending", domain.StatusPending, domain.StatusPending, false},
		{"approved is terminal", domain.StatusApproved, domain.StatusRejected, false},
		{"rejected is terminal", domain.StatusRejected, domain.StatusApproved, false},
		{"cancelled is terminal", domain.StatusCancelled, domain.StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.True(t, domain.StatusApproved.IsTerminal())
	assert.True(t, domain.StatusRejected.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
}

func TestLeaveRequest_Overlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	request := domain.LeaveRequest{StartDate: day(10), EndDate: day(14)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"fully before", day(1), day(9), false},
		{"fully after", day(15), day(20), false},
		{"touching the start", day(5), day(10), true},
		{"touching the end", day(14), day(18), true},
		{"contained within", day(11), day(12), true},
		{"surrounding", day(1), day(20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, request.Overlaps(tt.start, tt.end))
		})
	}
}
