package curve

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/zcb/daycount"
	"github.com/meenmo/zcb/utils"
)

// NodeCurve is a discount curve built from explicit discount factor nodes.
//
// Discount factors are log-linearly interpolated in ACT/365F time between the
// bracketing node dates. Outside the node range the nearest boundary pair is
// used, which amounts to log-linear extrapolation. An implicit node
// (valuation date, 1.0) is always present.
type NodeCurve struct {
	valuation time.Time
	dates     []time.Time
	dfs       map[time.Time]float64
}

// NewNodeCurve builds a curve from dated discount factors.
func NewNodeCurve(valuation time.Time, nodes map[time.Time]float64) (*NodeCurve, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("NewNodeCurve: %w", ErrNoNodes)
	}

	c := &NodeCurve{
		valuation: valuation,
		dfs:       make(map[time.Time]float64, len(nodes)+1),
	}
	for t, df := range nodes {
		if df <= 0 {
			return nil, fmt.Errorf("NewNodeCurve: non-positive discount factor %g at %s", df, t.Format(utils.DateLayout))
		}
		c.dfs[t] = df
	}
	if _, ok := c.dfs[valuation]; !ok {
		c.dfs[valuation] = 1.0
	}
	for t := range c.dfs {
		c.dates = append(c.dates, t)
	}
	utils.SortDates(c.dates)
	return c, nil
}

func (c *NodeCurve) DF(t time.Time) float64 {
	if df, ok := c.dfs[t]; ok {
		return df
	}
	if len(c.dates) == 1 {
		return c.dfs[c.dates[0]]
	}

	lo, hi := utils.AdjacentDates(t, c.dates)
	tLo := daycount.Fraction(c.valuation, lo, daycount.Act365F)
	tHi := daycount.Fraction(c.valuation, hi, daycount.Act365F)
	tx := daycount.Fraction(c.valuation, t, daycount.Act365F)

	lnLo := math.Log(c.dfs[lo])
	lnHi := math.Log(c.dfs[hi])
	w := (tx - tLo) / (tHi - tLo)
	return math.Exp(lnLo + w*(lnHi-lnLo))
}

func (c *NodeCurve) ValuationDate() time.Time {
	return c.valuation
}
