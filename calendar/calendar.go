// Package calendar provides business-day calendars and date rolling.
package calendar

import "time"

// ID identifies a business-day calendar.
type ID string

const (
	// None treats every calendar day as a business day.
	None ID = "NONE"
	// Weekend treats Monday through Friday as business days.
	Weekend ID = "WEEKEND"
)

// IsBusinessDay reports whether t is a business day on cal.
func IsBusinessDay(cal ID, t time.Time) bool {
	if cal == None {
		return true
	}
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// AddBusinessDays advances n business days (n can be negative).
func AddBusinessDays(cal ID, t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if IsBusinessDay(cal, t) {
			n -= step
		}
	}
	return t
}

// Adjust applies Modified Following.
func Adjust(cal ID, t time.Time) time.Time {
	origMonth := t.Month()
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	if t.Month() != origMonth {
		t = t.AddDate(0, 0, -1)
		for !IsBusinessDay(cal, t) {
			t = t.AddDate(0, 0, -1)
		}
	}
	return t
}

// AdjustFollowing applies a simple Following convention (no month preservation).
func AdjustFollowing(cal ID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}
