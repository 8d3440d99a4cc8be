package bond_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/meenmo/zcb/bond"
)

// Property: pricing a yield and solving the price back recovers the yield
// within the solver tolerance, for any settlement inside the bond's life and
// any yield in a wide market range.
func TestProperty_YieldPriceRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(1729)

	properties := gopter.NewProperties(parameters)
	b := testBond(t)

	properties.Property("yield survives a price round trip", prop.ForAll(
		func(ytm float64, offsetDays int) bool {
			settlement := b.IssueDate.AddDate(0, 0, offsetDays)

			clean, err := b.CleanPriceFromYTM(settlement, ytm, bond.ConventionZero)
			if err != nil {
				return false
			}
			got, err := b.YieldToMaturity(settlement, clean, bond.ConventionZero)
			if err != nil {
				return false
			}
			return math.Abs(got-ytm) < 1e-6
		},
		gen.Float64Range(-0.05, 0.50),
		gen.IntRange(0, 3650),
	))

	properties.TestingRun(t)
}

// Property: the price-yield curve is strictly decreasing in both the simple
// and compound discounting regimes.
func TestProperty_PriceDecreasesInYield(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(1729)

	properties := gopter.NewProperties(parameters)
	b := testBond(t)

	properties.Property("higher yield means lower price", prop.ForAll(
		func(y1, bump float64, offsetDays int) bool {
			settlement := b.IssueDate.AddDate(0, 0, offsetDays)
			y2 := y1 + bump

			p1, err := b.FullPriceFromYTM(settlement, y1, bond.ConventionZero)
			if err != nil {
				return false
			}
			p2, err := b.FullPriceFromYTM(settlement, y2, bond.ConventionZero)
			if err != nil {
				return false
			}
			return p2 < p1
		},
		gen.Float64Range(-0.05, 0.50),
		gen.Float64Range(0.0001, 0.10),
		gen.IntRange(0, 3650),
	))

	properties.TestingRun(t)
}
