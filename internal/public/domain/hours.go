package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrUnparseableHours reports an hours string that does not contain a
// recognizable 12-hour range. Stores carrying such strings are skipped for
// availability output but can still be listed as plain records.
var ErrUnparseableHours = errors.New("unparseable store hours")

// CanonicalHours is an open/close pair normalized to 24-hour integers.
// The close time is assumed to fall on the same day as the open time;
// overnight-spanning ranges are rejected by ParseHours.
type CanonicalHours struct {
	OpenHour    int
	OpenMinute  int
	CloseHour   int
	CloseMinute int
}

// rangeSeparator splits the human-authored hours text into an open side and
// a close side. Directory pages use plain hyphens, en dashes, and em dashes,
// with or without surrounding spaces.
var (
	rangeSeparator = regexp.MustCompile(`\s*[-–—]\s*`)
	clockPattern   = regexp.MustCompile(`(?i)^(\d{1,2})(:\d{1,2})?\s*(am|pm)$`)
)

// ParseHours normalizes a human-authored hour-range string such as
// "9am-10pm", "9:30am – 9pm", or "10:30am-8:30pm" into CanonicalHours.
// Each side of the range is rewritten to "H:MM am|pm" form (minutes default
// to zero, single-digit minutes are zero-padded, a space is inserted before
// the suffix) and parsed as a 12-hour clock time. Returns ErrUnparseableHours when either side lacks a
// recognizable pattern or when the range would span midnight.
func ParseHours(hoursRaw string) (CanonicalHours, error) {
	parts := rangeSeparator.Split(strings.TrimSpace(hoursRaw), -1)
	if len(parts) != 2 {
		return CanonicalHours{}, fmt.Errorf("%w: %q", ErrUnparseableHours, hoursRaw)
	}

	openHour, openMinute, err := parseClock12(parts[0])
	if err != nil {
		return CanonicalHours{}, fmt.Errorf("%w: %q", ErrUnparseableHours, hoursRaw)
	}
	closeHour, closeMinute, err := parseClock12(parts[1])
	if err != nil {
		return CanonicalHours{}, fmt.Errorf("%w: %q", ErrUnparseableHours, hoursRaw)
	}

	if closeHour*60+closeMinute <= openHour*60+openMinute {
		return CanonicalHours{}, fmt.Errorf("%w: overnight range %q", ErrUnparseableHours, hoursRaw)
	}

	return CanonicalHours{
		OpenHour:    openHour,
		OpenMinute:  openMinute,
		CloseHour:   closeHour,
		CloseMinute: closeMinute,
	}, nil
}

// parseClock12 converts one side of the range ("9am", "10:30 pm") into
// 24-hour hour/minute integers.
func parseClock12(side string) (hour, minute int, err error) {
	groups := clockPattern.FindStringSubmatch(strings.TrimSpace(side))
	if groups == nil {
		return 0, 0, fmt.Errorf("no clock pattern in %q", side)
	}

	minutes := strings.TrimPrefix(groups[2], ":")
	if minutes == "" {
		minutes = "00"
	} else if len(minutes) == 1 {
		minutes = "0" + minutes
	}
	normalized := groups[1] + ":" + minutes + " " + strings.ToLower(groups[3])

	t, err := time.Parse("3:04 pm", normalized)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// OpensAtLabel renders the opening time the way it would be spoken back to
// a user, e.g. "9am" or "10:30am".
func (h CanonicalHours) OpensAtLabel() string {
	hour := h.OpenHour % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "am"
	if h.OpenHour >= 12 {
		suffix = "pm"
	}
	if h.OpenMinute == 0 {
		return fmt.Sprintf("%d%s", hour, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", hour, h.OpenMinute, suffix)
}
