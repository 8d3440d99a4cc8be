package bond

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/zcb/calendar"
	"github.com/meenmo/zcb/curve"
	"github.com/meenmo/zcb/daycount"
	"github.com/meenmo/zcb/solver"
)

// tinyTime floors the time to maturity in the OAS zero-rate extraction to
// avoid dividing by zero on the maturity date itself.
const tinyTime = 1e-12

// FullPriceFromDiscountCurve prices the bond per 100 off a discount curve.
// Cash flows are discounted to the curve anchor and rebased to the
// settlement date, so settling after the anchor yields a forward price.
func (b *ZeroCouponBond) FullPriceFromDiscountCurve(settlement time.Time, dc curve.DiscountCurve) (float64, error) {
	if settlement.Before(dc.ValuationDate()) {
		return 0, fmt.Errorf("FullPriceFromDiscountCurve: %w", ErrSettleBeforeCurve)
	}
	if settlement.After(b.MaturityDate) {
		return 0, fmt.Errorf("FullPriceFromDiscountCurve: %w", ErrBondExpired)
	}

	dfSettle := dc.DF(settlement)

	// Walk the flow dates for shape parity with coupon bonds; the interim
	// flows of a zero are all zero, leaving only the redemption.
	df := 1.0
	for _, dt := range b.couponDates[1:] {
		if !dt.Before(settlement) {
			df = dc.DF(dt)
		}
	}

	px := df * b.redemption / dfSettle
	return px * b.par, nil
}

// CleanPriceFromDiscountCurve is the curve-based full price less accrued
// interest, per 100.
func (b *ZeroCouponBond) CleanPriceFromDiscountCurve(settlement time.Time, dc curve.DiscountCurve) (float64, error) {
	full, err := b.FullPriceFromDiscountCurve(settlement, dc)
	if err != nil {
		return 0, err
	}
	accrued, err := b.accruedPerPar(settlement)
	if err != nil {
		return 0, err
	}
	return full - accrued, nil
}

// FullPriceFromOAS prices the bond per 100 off the curve-implied zero rate
// to maturity shifted by a constant option-adjusted spread.
func (b *ZeroCouponBond) FullPriceFromOAS(settlement time.Time, dc curve.DiscountCurve, oas float64) (float64, error) {
	if settlement.After(b.MaturityDate) {
		return 0, fmt.Errorf("FullPriceFromOAS: %w", ErrBondExpired)
	}

	t := daycount.Fraction(settlement, b.MaturityDate, daycount.Zero)
	t = math.Max(t, tinyTime)

	df := dc.DF(b.MaturityDate)
	r := math.Pow(df, -1.0/t) - 1.0
	dfAdjusted := math.Pow(1.0+(r+oas), -t)

	return dfAdjusted * b.redemption * b.par, nil
}

// OptionAdjustedSpread solves for the spread over the curve-implied zero
// rate that reprices the bond to a clean price, using Newton-Raphson from a
// 1% initial guess.
func (b *ZeroCouponBond) OptionAdjustedSpread(settlement time.Time, cleanPrice float64, dc curve.DiscountCurve) (float64, error) {
	accrued, err := b.accruedPerPar(settlement)
	if err != nil {
		return 0, err
	}
	target := cleanPrice + accrued

	objective := func(s float64) float64 {
		px, err := b.FullPriceFromOAS(settlement, dc, s)
		if err != nil {
			return math.NaN()
		}
		return px - target
	}

	oas, err := solver.Newton(objective, oasGuess, solveTol, solveMaxIter)
	if err != nil {
		return 0, fmt.Errorf("OptionAdjustedSpread: price %g: %w", cleanPrice, err)
	}
	return oas, nil
}

// OptionAdjustedSpreadBatch solves one spread per clean price, preserving
// input order.
func (b *ZeroCouponBond) OptionAdjustedSpreadBatch(settlement time.Time, cleanPrices []float64, dc curve.DiscountCurve) ([]float64, error) {
	spreads := make([]float64, len(cleanPrices))
	for i, px := range cleanPrices {
		s, err := b.OptionAdjustedSpread(settlement, px, dc)
		if err != nil {
			return nil, fmt.Errorf("OptionAdjustedSpreadBatch: %w", err)
		}
		spreads[i] = s
	}
	return spreads, nil
}

// FullPriceFromSurvivalCurve prices the bond per 100 under default risk.
// The redemption is paid at maturity conditional on survival; on default
// within a period the holder recovers recoveryRate of par. Default timing
// inside a period is unknown, so the recovery leg averages the present
// values at the period-start and period-end discount factors (trapezoid).
func (b *ZeroCouponBond) FullPriceFromSurvivalCurve(settlement time.Time, dc curve.DiscountCurve, sc curve.SurvivalCurve, recoveryRate float64) (float64, error) {
	if settlement.After(b.MaturityDate) {
		return 0, fmt.Errorf("FullPriceFromSurvivalCurve: %w", ErrBondExpired)
	}

	prevQ := 1.0
	prevDF := 1.0
	df := 1.0
	q := 1.0
	recoveryPV := 0.0

	for _, dt := range b.couponDates[1:] {
		if dt.Before(settlement) {
			continue
		}
		df = dc.DF(dt)
		q = sc.SurvivalProb(dt)
		dq := q - prevQ

		recoveryPV += 0.5 * -dq * recoveryRate * prevDF
		recoveryPV += 0.5 * -dq * recoveryRate * df

		prevQ = q
		prevDF = df
	}

	pv := recoveryPV + df*q*b.redemption
	return pv * b.par, nil
}

// CleanPriceFromSurvivalCurve is the survival-adjusted full price less
// accrued interest.
func (b *ZeroCouponBond) CleanPriceFromSurvivalCurve(settlement time.Time, dc curve.DiscountCurve, sc curve.SurvivalCurve, recoveryRate float64) (float64, error) {
	full, err := b.FullPriceFromSurvivalCurve(settlement, dc, sc, recoveryRate)
	if err != nil {
		return 0, err
	}
	acc, err := b.AccruedInterest(settlement, 0, calendar.Weekend)
	if err != nil {
		return 0, err
	}
	return full - acc.Interest, nil
}
