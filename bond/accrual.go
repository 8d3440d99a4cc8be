package bond

import (
	"fmt"
	"time"

	"github.com/meenmo/zcb/calendar"
	"github.com/meenmo/zcb/daycount"
	"github.com/meenmo/zcb/utils"
)

// Accrual is the accrued-interest state for a single settlement date. It is a
// value: nothing is cached on the bond, so results for different settlement
// dates never interfere.
type Accrual struct {
	// Interest is the accrued interest in face-amount units.
	Interest float64
	// Days is the day count from the period start to settlement.
	Days int
	// Factor is the ZERO day-count fraction from the period start to
	// settlement, less one full period if settlement is past the
	// ex-dividend date.
	Factor float64
	// Alpha is the fraction of the current period remaining, 1 - Factor.
	Alpha float64

	PrevCouponDate time.Time
	NextCouponDate time.Time
}

// AccruedInterest computes the accrued interest at settlement under the zero
// coupon convention: the issue discount accretes linearly from issue to
// maturity. exDividendDays shifts the ex-dividend date back from the next
// flow date by business days on cal; it is meaningless for a zero (there is
// no coupon to go ex) but kept for parity with coupon bonds.
func (b *ZeroCouponBond) AccruedInterest(settlement time.Time, exDividendDays int, cal calendar.ID) (Accrual, error) {
	if len(b.couponDates) == 0 {
		return Accrual{}, fmt.Errorf("AccruedInterest: %w", ErrNoFlows)
	}

	// Locate the bracketing period. Flows paid on the settlement date still
	// belong to the holder.
	var prev, next time.Time
	found := false
	for i := 1; i < len(b.couponDates); i++ {
		if !b.couponDates[i].Before(settlement) {
			prev = b.couponDates[i-1]
			next = b.couponDates[i]
			found = true
			break
		}
	}
	if !found {
		return Accrual{}, fmt.Errorf("AccruedInterest: %w (settlement %s, maturity %s)",
			ErrBondExpired, settlement.Format(utils.DateLayout), b.MaturityDate.Format(utils.DateLayout))
	}

	factor, days, _ := daycount.YearFrac(prev, settlement, daycount.Zero)

	exDividend := calendar.AddBusinessDays(cal, next, -exDividendDays)
	if settlement.After(exDividend) {
		factor -= 1.0
	}

	interest := (b.par - b.IssuePrice) *
		utils.Days(b.IssueDate, settlement) / utils.Days(b.IssueDate, b.MaturityDate)

	return Accrual{
		Interest:       interest * b.FaceAmount / b.par,
		Days:           days,
		Factor:         factor,
		Alpha:          1.0 - factor,
		PrevCouponDate: prev,
		NextCouponDate: next,
	}, nil
}

// accruedPerPar rescales accrued interest from face-amount units to par
// (per-100) units for clean/dirty price conversions.
func (b *ZeroCouponBond) accruedPerPar(settlement time.Time) (float64, error) {
	acc, err := b.AccruedInterest(settlement, 0, calendar.Weekend)
	if err != nil {
		return 0, err
	}
	return acc.Interest * b.par / b.FaceAmount, nil
}
