package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAvailabilityClosingSoon(t *testing.T) {
	hours := CanonicalHours{OpenHour: 9, CloseHour: 21}

	result := ResolveAvailability(hours, ClockTime{Hour: 20, Minute: 30})

	assert.Equal(t, StateOpen, result.State)
	assert.True(t, result.ClosingSoon)
	assert.Equal(t, 30, result.MinutesToClose)
}

func TestResolveAvailabilityOpenMidday(t *testing.T) {
	hours := CanonicalHours{OpenHour: 9, CloseHour: 21}

	result := ResolveAvailability(hours, ClockTime{Hour: 14, Minute: 15})

	assert.Equal(t, StateOpen, result.State)
	assert.False(t, result.ClosingSoon)
}

func TestResolveAvailabilityBeforeOpening(t *testing.T) {
	hours := CanonicalHours{OpenHour: 9, CloseHour: 21}

	result := ResolveAvailability(hours, ClockTime{Hour: 8, Minute: 0})

	assert.Equal(t, StateClosed, result.State)
	assert.Equal(t, 0, result.WaitHours)
	assert.Equal(t, 60, result.WaitMinutes)
}

func TestResolveAvailabilityLongWait(t *testing.T) {
	hours := CanonicalHours{OpenHour: 10, CloseHour: 20}

	result := ResolveAvailability(hours, ClockTime{Hour: 6, Minute: 45})

	assert.Equal(t, StateClosed, result.State)
	assert.Equal(t, 3, result.WaitHours)
	assert.Equal(t, 15, result.WaitMinutes)
}

func TestResolveAvailabilityInsideOpeningHour(t *testing.T) {
	hours := CanonicalHours{OpenHour: 9, OpenMinute: 30, CloseHour: 21}

	result := ResolveAvailability(hours, ClockTime{Hour: 9, Minute: 10})

	assert.Equal(t, StateClosed, result.State)
	assert.Equal(t, 0, result.WaitHours)
	assert.Equal(t, 50, result.WaitMinutes)
}

func TestResolveAvailabilityAfterClosing(t *testing.T) {
	hours := CanonicalHours{OpenHour: 10, OpenMinute: 30, CloseHour: 20, CloseMinute: 30}

	result := ResolveAvailability(hours, ClockTime{Hour: 21, Minute: 0})

	assert.Equal(t, StateClosedUntil, result.State)
	assert.Equal(t, "10:30am", result.OpensAt)
}

func TestResolveAvailabilityBoundaries(t *testing.T) {
	hours := CanonicalHours{OpenHour: 9, CloseHour: 21}

	atOpen := ResolveAvailability(hours, ClockTime{Hour: 9, Minute: 0})
	assert.Equal(t, StateOpen, atOpen.State)

	atClose := ResolveAvailability(hours, ClockTime{Hour: 21, Minute: 0})
	assert.Equal(t, StateClosedUntil, atClose.State)
}
