package curve

import (
	"math"
	"time"

	"github.com/meenmo/zcb/daycount"
)

// FlatCurve discounts at a single annually compounded zero rate on an
// ACT/365F time axis.
type FlatCurve struct {
	valuation time.Time
	rate      float64
}

// NewFlatCurve returns a flat discount curve anchored at valuation.
// rate is a decimal (0.05 == 5%).
func NewFlatCurve(valuation time.Time, rate float64) *FlatCurve {
	return &FlatCurve{valuation: valuation, rate: rate}
}

func (c *FlatCurve) DF(t time.Time) float64 {
	yrs := daycount.Fraction(c.valuation, t, daycount.Act365F)
	if yrs <= 0 {
		return 1.0
	}
	return math.Pow(1.0+c.rate, -yrs)
}

func (c *FlatCurve) ValuationDate() time.Time {
	return c.valuation
}
