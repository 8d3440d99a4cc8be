package bond

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/zcb/daycount"
	"github.com/meenmo/zcb/solver"
	"github.com/meenmo/zcb/utils"
)

// The IRR root search runs on this bracket; a simple return outside it is
// taken as-is, since a sign change inside the bracket is no longer assured.
const (
	irrLowerBound = -0.9999
	irrUpperBound = 5.0
)

// Return is the outcome of a holding-period return calculation.
type Return struct {
	// Simple is the annualized simple rate of return.
	Simple float64
	// IRR is the compounded internal rate of return of the dated cash
	// flows. Equals Simple when Simple falls outside the search bracket.
	IRR float64
	// PnL is the net cash over the period in par units.
	PnL float64
}

type timedCashflow struct {
	years  float64 // ACT/365 year fraction from the begin date
	amount float64
}

// RateOfReturn computes the total return of buying at beginYTM on beginDate
// and selling at endYTM on endDate, including any flows paid in between
// (none for a zero). Flows on the buy date belong to the buyer; flows on the
// sell date belong to the next holder.
func (b *ZeroCouponBond) RateOfReturn(beginDate, endDate time.Time, beginYTM, endYTM float64, convention YTMConvention) (Return, error) {
	if !endDate.After(beginDate) {
		return Return{}, fmt.Errorf("RateOfReturn: %w", ErrBadPeriod)
	}

	buyPrice, err := b.FullPriceFromYTM(beginDate, beginYTM, convention)
	if err != nil {
		return Return{}, fmt.Errorf("RateOfReturn: buy price: %w", err)
	}
	sellPrice, err := b.FullPriceFromYTM(endDate, endYTM, convention)
	if err != nil {
		return Return{}, fmt.Errorf("RateOfReturn: sell price: %w", err)
	}

	var flows []timedCashflow
	for i, dt := range b.couponDates {
		if dt.Before(beginDate) || !dt.Before(endDate) {
			continue
		}
		flows = append(flows, timedCashflow{
			years:  utils.Days(beginDate, dt) / daycount.DaysInYear,
			amount: b.flowAmounts[i] * b.par,
		})
	}
	holdingYears := utils.Days(beginDate, endDate) / daycount.DaysInYear
	flows = append(flows,
		timedCashflow{years: 0, amount: -buyPrice},
		timedCashflow{years: holdingYears, amount: sellPrice},
	)

	pnl := 0.0
	for _, cf := range flows {
		pnl += cf.amount
	}
	simple := pnl / buyPrice / holdingYears

	irr := simple
	if simple >= irrLowerBound && simple <= irrUpperBound {
		npv := func(rate float64) float64 {
			v := 0.0
			for _, cf := range flows {
				v += cf.amount / math.Pow(1.0+rate, cf.years)
			}
			return v
		}
		irr, err = solver.Brent(npv, irrLowerBound, irrUpperBound, solveTol)
		if err != nil {
			return Return{}, fmt.Errorf("RateOfReturn: irr: %w", err)
		}
	}

	return Return{Simple: simple, IRR: irr, PnL: pnl}, nil
}
