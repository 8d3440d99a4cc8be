package utils

import (
	"math"
	"sort"
	"time"
)

// DateLayout is the date format used across the library and CLI.
const DateLayout = "2006-01-02"

// ParseDate converts a YYYY-MM-DD string to time.Time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Days returns the number of calendar days from start to end (ACT).
func Days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

// SortDates sorts a slice of time.Time in ascending order.
func SortDates(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
}

// AdjacentDates returns the two dates from a sorted date slice that bracket target.
//
// dates must be sorted ascending with at least two elements. A target outside
// the range maps to the nearest boundary pair, so callers can extrapolate.
func AdjacentDates(target time.Time, dates []time.Time) (time.Time, time.Time) {
	if len(dates) < 2 {
		panic("AdjacentDates: need at least 2 dates")
	}

	// First index with dates[i] >= target.
	i := sort.Search(len(dates), func(i int) bool {
		return !dates[i].Before(target)
	})

	if i <= 0 {
		return dates[0], dates[1]
	}
	if i >= len(dates) {
		return dates[len(dates)-2], dates[len(dates)-1]
	}
	return dates[i-1], dates[i]
}

// AddMonths behaves like Excel's EDATE, avoiding Go's month normalization
// surprises (Jan 31 + 1 month is Feb 28/29, not Mar 2/3).
func AddMonths(t time.Time, months int) time.Time {
	d := t.AddDate(0, months, 0)
	want := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	for d.Month() != want.Month() {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// RoundTo rounds a float to the specified decimal places.
func RoundTo(val float64, decimals uint32) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
