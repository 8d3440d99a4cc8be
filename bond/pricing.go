package bond

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/zcb/calendar"
	"github.com/meenmo/zcb/daycount"
	"github.com/meenmo/zcb/solver"
)

const (
	// ytmEpsilon nudges the yield off the removable singularity at exactly
	// zero, where d(price)/dy passes through a 0/0 form.
	ytmEpsilon = 1.2345e-11

	// yieldBump is the 1bp shift used for finite-difference risk measures.
	yieldBump = 0.0001

	solveTol     = 1e-8
	solveMaxIter = 50
	ytmGuess     = 0.05
	oasGuess     = 0.01
)

// FullPriceFromYTM returns the dirty price per 100 from the yield to
// maturity. With one year or less to maturity the bond is discounted at
// simple interest; beyond one year at annual compounding.
func (b *ZeroCouponBond) FullPriceFromYTM(settlement time.Time, ytm float64, convention YTMConvention) (float64, error) {
	if convention != ConventionZero {
		return 0, fmt.Errorf("FullPriceFromYTM: %w", ErrConvention)
	}

	remaining := 0
	for _, dt := range b.couponDates {
		if dt.After(settlement) {
			remaining++
		}
	}
	if remaining-1 < 0 {
		return 0, fmt.Errorf("FullPriceFromYTM: %w", ErrBondExpired)
	}

	y := ytm + ytmEpsilon
	accFactor := daycount.Fraction(settlement, b.MaturityDate, daycount.Zero)
	if accFactor <= 1 {
		return b.par / (1.0 + y*accFactor), nil
	}
	return b.par / math.Pow(1.0+y, accFactor), nil
}

// CleanPriceFromYTM returns the quoted price per 100: the full price less
// accrued interest.
func (b *ZeroCouponBond) CleanPriceFromYTM(settlement time.Time, ytm float64, convention YTMConvention) (float64, error) {
	full, err := b.FullPriceFromYTM(settlement, ytm, convention)
	if err != nil {
		return 0, err
	}
	accrued, err := b.accruedPerPar(settlement)
	if err != nil {
		return 0, err
	}
	return full - accrued, nil
}

// Principal returns the face-scaled settlement value less accrued interest.
func (b *ZeroCouponBond) Principal(settlement time.Time, ytm float64, convention YTMConvention) (float64, error) {
	full, err := b.FullPriceFromYTM(settlement, ytm, convention)
	if err != nil {
		return 0, err
	}
	acc, err := b.AccruedInterest(settlement, 0, calendar.Weekend)
	if err != nil {
		return 0, err
	}
	return full*b.FaceAmount/b.par - acc.Interest, nil
}

// YieldToMaturity solves the price-yield relationship for the yield implied
// by a clean price, using Newton-Raphson from a 5% initial guess.
func (b *ZeroCouponBond) YieldToMaturity(settlement time.Time, cleanPrice float64, convention YTMConvention) (float64, error) {
	if convention != ConventionZero {
		return 0, fmt.Errorf("YieldToMaturity: %w", ErrConvention)
	}
	accrued, err := b.accruedPerPar(settlement)
	if err != nil {
		return 0, err
	}
	target := cleanPrice + accrued

	objective := func(y float64) float64 {
		px, err := b.FullPriceFromYTM(settlement, y, convention)
		if err != nil {
			return math.NaN()
		}
		return px - target
	}

	ytm, err := solver.Newton(objective, ytmGuess, solveTol, solveMaxIter)
	if err != nil {
		return 0, fmt.Errorf("YieldToMaturity: price %g: %w", cleanPrice, err)
	}
	return ytm, nil
}

// YieldToMaturityBatch solves one yield per clean price, preserving input
// order.
func (b *ZeroCouponBond) YieldToMaturityBatch(settlement time.Time, cleanPrices []float64, convention YTMConvention) ([]float64, error) {
	ytms := make([]float64, len(cleanPrices))
	for i, px := range cleanPrices {
		y, err := b.YieldToMaturity(settlement, px, convention)
		if err != nil {
			return nil, fmt.Errorf("YieldToMaturityBatch: %w", err)
		}
		ytms[i] = y
	}
	return ytms, nil
}

// DollarDuration returns -dP/dy by a central 1bp bump. This is the DV01 in
// Bloomberg terms.
func (b *ZeroCouponBond) DollarDuration(settlement time.Time, ytm float64, convention YTMConvention) (float64, error) {
	pDown, err := b.FullPriceFromYTM(settlement, ytm-yieldBump, convention)
	if err != nil {
		return 0, err
	}
	pUp, err := b.FullPriceFromYTM(settlement, ytm+yieldBump, convention)
	if err != nil {
		return 0, err
	}
	return -(pUp - pDown) / yieldBump / 2.0, nil
}

// MacauleyDuration returns the Macauley duration at the given yield.
func (b *ZeroCouponBond) MacauleyDuration(settlement time.Time, ytm float64, convention YTMConvention) (float64, error) {
	dd, err := b.DollarDuration(settlement, ytm, convention)
	if err != nil {
		return 0, err
	}
	full, err := b.FullPriceFromYTM(settlement, ytm, convention)
	if err != nil {
		return 0, err
	}
	return dd * (1.0 + ytm) / full, nil
}

// ModifiedDuration returns the modified duration at the given yield.
func (b *ZeroCouponBond) ModifiedDuration(settlement time.Time, ytm float64, convention YTMConvention) (float64, error) {
	dd, err := b.DollarDuration(settlement, ytm, convention)
	if err != nil {
		return 0, err
	}
	full, err := b.FullPriceFromYTM(settlement, ytm, convention)
	if err != nil {
		return 0, err
	}
	return dd / full, nil
}

// ConvexityFromYTM returns the second-order price sensitivity per unit par.
func (b *ZeroCouponBond) ConvexityFromYTM(settlement time.Time, ytm float64, convention YTMConvention) (float64, error) {
	pDown, err := b.FullPriceFromYTM(settlement, ytm-yieldBump, convention)
	if err != nil {
		return 0, err
	}
	pMid, err := b.FullPriceFromYTM(settlement, ytm, convention)
	if err != nil {
		return 0, err
	}
	pUp, err := b.FullPriceFromYTM(settlement, ytm+yieldBump, convention)
	if err != nil {
		return 0, err
	}
	return ((pUp + pDown) - 2.0*pMid) / yieldBump / yieldBump / pMid / b.par, nil
}

// CurrentYield returns the virtual running yield: the annualized issue
// discount over the clean price. A zero has no coupon, so
// (par - issue price) / tenor stands in for one. Settlement-independent.
func (b *ZeroCouponBond) CurrentYield(cleanPrice float64) float64 {
	tenor := daycount.Fraction(b.IssueDate, b.MaturityDate, daycount.Zero)
	virtualCoupon := (b.par - b.IssuePrice) / tenor
	return virtualCoupon / cleanPrice
}
