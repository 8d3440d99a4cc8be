// Package schedule generates business-day adjusted accrual periods for a
// floating leg. It is used by the asset swap spread to build the PV01 grid.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/meenmo/zcb/calendar"
	"github.com/meenmo/zcb/utils"
)

var (
	// ErrBadFrequency is returned for a non-positive payment frequency.
	ErrBadFrequency = errors.New("schedule: frequency months must be positive")
	// ErrBadRange is returned when maturity is not after the effective date.
	ErrBadRange = errors.New("schedule: maturity must be after effective date")
)

// Period is a single accrual period. Dates are business-day adjusted with
// Modified Following; Pay coincides with End (no pay delay).
type Period struct {
	Start time.Time
	End   time.Time
	Pay   time.Time
}

// Generate builds periods from effective to maturity, stepping backward from
// maturity so any stub lands at the front.
func Generate(effective, maturity time.Time, freqMonths int, cal calendar.ID) ([]Period, error) {
	if freqMonths <= 0 {
		return nil, fmt.Errorf("Generate: %w (got %d)", ErrBadFrequency, freqMonths)
	}
	if !maturity.After(effective) {
		return nil, fmt.Errorf("Generate: %w (effective %s, maturity %s)",
			ErrBadRange, effective.Format(utils.DateLayout), maturity.Format(utils.DateLayout))
	}

	var ends []time.Time
	for d := maturity; d.After(effective); d = utils.AddMonths(d, -freqMonths) {
		ends = append(ends, d)
	}
	// Reverse into chronological order.
	for i, j := 0, len(ends)-1; i < j; i, j = i+1, j-1 {
		ends[i], ends[j] = ends[j], ends[i]
	}

	periods := make([]Period, 0, len(ends))
	start := calendar.Adjust(cal, effective)
	for _, end := range ends {
		adjEnd := calendar.Adjust(cal, end)
		if !adjEnd.After(start) {
			continue
		}
		periods = append(periods, Period{Start: start, End: adjEnd, Pay: adjEnd})
		start = adjEnd
	}
	return periods, nil
}
