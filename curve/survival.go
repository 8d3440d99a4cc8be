package curve

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/zcb/daycount"
	"github.com/meenmo/zcb/utils"
)

// FlatSurvivalCurve models a constant hazard rate: q(t) = exp(-h*t).
type FlatSurvivalCurve struct {
	valuation time.Time
	hazard    float64
}

// NewFlatSurvivalCurve returns a constant-hazard survival curve anchored at
// valuation. hazard is a decimal annual intensity.
func NewFlatSurvivalCurve(valuation time.Time, hazard float64) *FlatSurvivalCurve {
	return &FlatSurvivalCurve{valuation: valuation, hazard: hazard}
}

func (c *FlatSurvivalCurve) SurvivalProb(t time.Time) float64 {
	yrs := daycount.Fraction(c.valuation, t, daycount.Act365F)
	if yrs <= 0 {
		return 1.0
	}
	return math.Exp(-c.hazard * yrs)
}

// NodeSurvivalCurve interpolates survival probabilities linearly in ACT/365F
// time between dated nodes. An implicit node (valuation date, 1.0) is always
// present; probabilities are clamped to [0, 1].
type NodeSurvivalCurve struct {
	valuation time.Time
	dates     []time.Time
	probs     map[time.Time]float64
}

// NewNodeSurvivalCurve builds a survival curve from dated probabilities.
func NewNodeSurvivalCurve(valuation time.Time, nodes map[time.Time]float64) (*NodeSurvivalCurve, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("NewNodeSurvivalCurve: %w", ErrNoNodes)
	}

	c := &NodeSurvivalCurve{
		valuation: valuation,
		probs:     make(map[time.Time]float64, len(nodes)+1),
	}
	for t, q := range nodes {
		if q < 0 || q > 1 {
			return nil, fmt.Errorf("NewNodeSurvivalCurve: probability %g at %s outside [0,1]", q, t.Format(utils.DateLayout))
		}
		c.probs[t] = q
	}
	if _, ok := c.probs[valuation]; !ok {
		c.probs[valuation] = 1.0
	}
	for t := range c.probs {
		c.dates = append(c.dates, t)
	}
	utils.SortDates(c.dates)
	return c, nil
}

func (c *NodeSurvivalCurve) SurvivalProb(t time.Time) float64 {
	if q, ok := c.probs[t]; ok {
		return q
	}
	if len(c.dates) == 1 {
		return c.probs[c.dates[0]]
	}

	lo, hi := utils.AdjacentDates(t, c.dates)
	tLo := daycount.Fraction(c.valuation, lo, daycount.Act365F)
	tHi := daycount.Fraction(c.valuation, hi, daycount.Act365F)
	tx := daycount.Fraction(c.valuation, t, daycount.Act365F)

	w := (tx - tLo) / (tHi - tLo)
	q := c.probs[lo] + w*(c.probs[hi]-c.probs[lo])
	return math.Max(0.0, math.Min(1.0, q))
}
