package domain

// AvailabilityState tags the open/closed status of a store relative to a
// point in time.
type AvailabilityState string

const (
	// StateOpen means the current time falls within [open, close).
	StateOpen AvailabilityState = "open"
	// StateClosed means the store has not opened yet on this clock cycle.
	StateClosed AvailabilityState = "closed"
	// StateClosedUntil means the store already closed; the result carries
	// the opening time for the next cycle.
	StateClosedUntil AvailabilityState = "closed_until"
)

// ClockTime is a wall-clock instant reduced to hour and minute. The resolver
// works on bare integers within a single day and never crosses midnight.
type ClockTime struct {
	Hour   int
	Minute int
}

// Availability is the resolved open/closed status for one store. Which
// fields are meaningful depends on State: ClosingSoon/MinutesToClose apply
// to open stores near the closing boundary, WaitHours/WaitMinutes to stores
// that have not opened yet, OpensAt to stores that already closed.
type Availability struct {
	State          AvailabilityState
	ClosingSoon    bool
	MinutesToClose int
	WaitHours      int
	WaitMinutes    int
	OpensAt        string
}

// ResolveAvailability computes the open/closed status of the given canonical
// hours at the supplied time.
//
// An open store within one hour of closing additionally reports the minutes
// remaining. A store that has not opened yet reports the wait as
// (open_hour - now_hour - 1) full hours plus (60 - now_minute) minutes, so a
// query at 8:00 against a 9:00 opening yields zero hours and sixty minutes.
// A store past closing only restates its opening time; the resolver has no
// notion of "tomorrow".
func ResolveAvailability(hours CanonicalHours, now ClockTime) Availability {
	nowTotal := now.Hour*60 + now.Minute
	openTotal := hours.OpenHour*60 + hours.OpenMinute
	closeTotal := hours.CloseHour*60 + hours.CloseMinute

	switch {
	case nowTotal >= openTotal && nowTotal < closeTotal:
		result := Availability{State: StateOpen}
		if hours.CloseHour-now.Hour == 1 {
			result.ClosingSoon = true
			if now.Minute != hours.CloseMinute {
				result.MinutesToClose = 60 - now.Minute
			} else {
				result.MinutesToClose = hours.CloseMinute - now.Minute
			}
		}
		return result
	case nowTotal < openTotal:
		waitHours := hours.OpenHour - now.Hour - 1
		if waitHours < 0 {
			waitHours = 0
		}
		return Availability{
			State:       StateClosed,
			WaitHours:   waitHours,
			WaitMinutes: 60 - now.Minute,
		}
	default:
		return Availability{
			State:   StateClosedUntil,
			OpensAt: hours.OpensAtLabel(),
		}
	}
}
