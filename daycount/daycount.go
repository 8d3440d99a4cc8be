// Package daycount implements the day count conventions used for bond
// accrual and discounting.
package daycount

import "time"

// Convention identifies a day count rule.
type Convention string

const (
	// Zero is the zero coupon bond rule: actual days over a fixed 365-day
	// year, with no period adjustment. The accrual factor doubles as the
	// discounting time axis for zeros.
	Zero Convention = "ZERO"

	Act360     Convention = "ACT/360"
	Act365F    Convention = "ACT/365F"
	Thirty360E Convention = "30E/360"
)

// DaysInYear is the denominator of the Zero and ACT/365F rules.
const DaysInYear = 365.0

// YearFrac computes the accrual between start and end under the convention,
// returning the year fraction, the integer day count, and the denominator.
func YearFrac(start, end time.Time, c Convention) (factor float64, days int, denom float64) {
	switch c {
	case Act360:
		d := actualDays(start, end)
		return float64(d) / 360.0, d, 360.0
	case Thirty360E:
		// 30E/360 ISDA (Eurobond basis): D1 and D2 capped at 30.
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		d := 360*(y2-y1) + 30*(m2-m1) + (d2 - d1)
		return float64(d) / 360.0, d, 360.0
	default:
		// Zero and ACT/365F share the same arithmetic.
		d := actualDays(start, end)
		return float64(d) / DaysInYear, d, DaysInYear
	}
}

// Fraction is YearFrac without the day/denominator breakdown.
func Fraction(start, end time.Time, c Convention) float64 {
	f, _, _ := YearFrac(start, end, c)
	return f
}

func actualDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
