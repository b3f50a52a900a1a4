package models

import (
	"fmt"
)

const minutesPerDay = 24 * 60

// Clock is a wall-clock time of day with minute resolution. Schedules are
// computed purely on times of day; the caller owns the calendar date.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return Clock{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("invalid time %q: out of range", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// Minutes returns minutes since midnight, in [0, 1440).
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// ClockFromMinutes maps minutes since midnight back to a Clock, wrapping
// across midnight so any input lands in a valid time of day.
func ClockFromMinutes(m int) Clock {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return Clock{Hour: m / 60, Minute: m % 60}
}

// Add returns the clock shifted by delta minutes; delta may be negative.
func (c Clock) Add(delta int) Clock {
	return ClockFromMinutes(c.Minutes() + delta)
}

// MinutesUntil returns the signed minutes from c to other, assuming the same
// day. A raw difference below -12h is read as "other is tomorrow" and gets a
// day added. Gaps that genuinely exceed 12 hours are therefore misread; the
// scheduling window never produces them.
func (c Clock) MinutesUntil(other Clock) int {
	diff := other.Minutes() - c.Minutes()
	if diff < -minutesPerDay/2 {
		diff += minutesPerDay
	}
	return diff
}

// String renders 24-hour "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Display renders 12-hour "03:04 PM" for user-facing output.
func (c Clock) Display() string {
	h := c.Hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if c.Hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", h, c.Minute, suffix)
}
