// Package bond prices zero coupon bonds: yield and curve based pricing,
// duration/convexity risk measures, default-risky pricing off a survival
// curve, asset swap spreads and holding-period returns.
//
// A zero coupon bond pays no periodic coupon. It is issued at a discount and
// redeems at par, so all value transfer happens at maturity. Accrued interest
// follows the special zero convention
//
//	accrued = (par - issue price) * (settlement - issue) / (maturity - issue)
//
// i.e. straight-line accretion of the issue discount, scaled to the face
// amount held.
package bond

import (
	"errors"
	"time"
)

var (
	// ErrIssueAfterMaturity is returned by NewZeroCouponBond when the issue
	// date does not strictly precede the maturity date.
	ErrIssueAfterMaturity = errors.New("bond: issue date must precede maturity date")
	// ErrConvention is returned when a yield convention other than
	// ConventionZero is passed to a zero coupon operation.
	ErrConvention = errors.New("bond: zero coupon bonds require ConventionZero")
	// ErrBondExpired is returned when no flow dates remain at or after the
	// settlement date.
	ErrBondExpired = errors.New("bond: no flows remain after settlement")
	// ErrSettleBeforeCurve is returned when the settlement date precedes the
	// discount curve's valuation date.
	ErrSettleBeforeCurve = errors.New("bond: settlement before curve valuation date")
	// ErrNoFlows is returned when accrual is computed on an instrument with
	// no flow dates.
	ErrNoFlows = errors.New("bond: instrument has no flow dates")
	// ErrBadPeriod is returned when a return period's end date is not after
	// its begin date.
	ErrBadPeriod = errors.New("bond: end date must be after begin date")
)

// YTMConvention selects the yield-to-maturity calculation convention. The
// variants mirror the coupon bond conventions for interface parity, but a
// zero coupon bond accepts only ConventionZero.
type YTMConvention int

const (
	// ConventionZero discounts with simple interest inside the final year
	// and annual compounding beyond it.
	ConventionZero YTMConvention = iota
	ConventionUKDMO
	ConventionUSStreet
	ConventionUSTreasury
)

// ZeroCouponBond holds the immutable economic terms of a zero coupon bond.
// Construct with NewZeroCouponBond; the zero value is not usable.
type ZeroCouponBond struct {
	IssueDate    time.Time
	MaturityDate time.Time
	// IssuePrice is the discounted price at issue in par (per-100) units,
	// typically below par. The accrual formula still yields a well-defined
	// (negative) result if it is above par.
	IssuePrice float64
	// FaceAmount is the notional held; it scales all cash amounts.
	FaceAmount float64

	par        float64 // quoting unit, fixed at 100
	redemption float64 // fraction of par paid at maturity, fixed at 1.0

	// A zero has exactly two flow dates with zero coupon amounts. The
	// slices exist for shape parity with coupon bonds.
	couponDates  []time.Time
	paymentDates []time.Time
	flowAmounts  []float64
}

// NewZeroCouponBond creates a bond from its issue date, maturity date, issue
// price (per 100) and face amount held.
func NewZeroCouponBond(issueDate, maturityDate time.Time, issuePrice, faceAmount float64) (*ZeroCouponBond, error) {
	if !issueDate.Before(maturityDate) {
		return nil, ErrIssueAfterMaturity
	}

	return &ZeroCouponBond{
		IssueDate:    issueDate,
		MaturityDate: maturityDate,
		IssuePrice:   issuePrice,
		FaceAmount:   faceAmount,
		par:          100.0,
		redemption:   1.0,
		couponDates:  []time.Time{issueDate, maturityDate},
		paymentDates: []time.Time{issueDate, maturityDate},
		flowAmounts:  []float64{0.0, 0.0},
	}, nil
}

// Par returns the quoting unit (100).
func (b *ZeroCouponBond) Par() float64 {
	return b.par
}
