// Package curve defines the curve contracts consumed by the bond pricers and
// a few concrete curves sufficient for pricing and testing.
package curve

import (
	"errors"
	"time"
)

// ErrNoNodes is returned when a node curve is built without any nodes.
var ErrNoNodes = errors.New("curve: at least one node is required")

// DiscountCurve provides discount factors anchored at a valuation date.
type DiscountCurve interface {
	// DF returns the discount factor for date t. DF(ValuationDate()) == 1.
	DF(t time.Time) float64
	ValuationDate() time.Time
}

// SurvivalCurve provides default-survival probabilities by date.
type SurvivalCurve interface {
	// SurvivalProb returns the probability in [0, 1] of no default up to t.
	SurvivalProb(t time.Time) float64
}
