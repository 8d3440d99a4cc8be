package bond_test

import (
	"math"
	"testing"
	"time"

	"github.com/meenmo/zcb/bond"
	"github.com/meenmo/zcb/calendar"
	"github.com/meenmo/zcb/curve"
	"github.com/meenmo/zcb/daycount"
)

func TestASWSpread_FairPriceIsZero(t *testing.T) {
	t.Parallel()
	b := testBond(t)

	settlement := date(2025, 1, 1)
	dc := curve.NewFlatCurve(settlement, 0.04)

	// A bond priced exactly on the discount curve swaps flat.
	clean, err := b.CleanPriceFromDiscountCurve(settlement, dc)
	if err != nil {
		t.Fatalf("CleanPriceFromDiscountCurve: %v", err)
	}

	got, err := b.ASWSpread(bond.ASWInput{
		SettlementDate:  settlement,
		CleanPrice:      clean,
		Notional:        1_000_000,
		FloatFreqMonths: 6,
		FloatDayCount:   daycount.Act360,
		Calendar:        calendar.Weekend,
		DiscountCurve:   dc,
	})
	if err != nil {
		t.Fatalf("ASWSpread: %v", err)
	}
	if math.Abs(got.SpreadBP) > 1e-6 {
		t.Fatalf("spread = %.10f bp, want 0 for a fairly priced bond", got.SpreadBP)
	}
	if got.PV01 <= 0 {
		t.Fatalf("pv01 = %g, want > 0", got.PV01)
	}
}

func TestASWSpread_CheapBondSwapsPositive(t *testing.T) {
	t.Parallel()
	b := testBond(t)

	settlement := date(2025, 1, 1)
	dc := curve.NewFlatCurve(settlement, 0.04)

	fair, err := b.CleanPriceFromDiscountCurve(settlement, dc)
	if err != nil {
		t.Fatalf("CleanPriceFromDiscountCurve: %v", err)
	}

	// Two points cheap to the curve: the spread compensates the buyer.
	got, err := b.ASWSpread(bond.ASWInput{
		SettlementDate:  settlement,
		CleanPrice:      fair - 2.0,
		Notional:        1_000_000,
		FloatFreqMonths: 6,
		FloatDayCount:   daycount.Act360,
		Calendar:        calendar.Weekend,
		DiscountCurve:   dc,
	})
	if err != nil {
		t.Fatalf("ASWSpread: %v", err)
	}
	if got.SpreadBP <= 0 {
		t.Fatalf("spread = %.6f bp, want > 0 for a cheap bond", got.SpreadBP)
	}

	// Spread times PV01 recovers the price gap on the notional.
	gap := 2.0 / 100.0 * 1_000_000
	if math.Abs(got.SpreadBP*got.PV01-gap) > 1e-3 {
		t.Fatalf("spread*pv01 = %.6f, want price gap %.6f", got.SpreadBP*got.PV01, gap)
	}
}

func TestASWSpread_InputValidation(t *testing.T) {
	t.Parallel()
	b := testBond(t)

	dc := curve.NewFlatCurve(date(2025, 1, 1), 0.04)
	valid := bond.ASWInput{
		SettlementDate:  date(2025, 1, 1),
		CleanPrice:      60,
		Notional:        1_000_000,
		FloatFreqMonths: 6,
		FloatDayCount:   daycount.Act360,
		Calendar:        calendar.Weekend,
		DiscountCurve:   dc,
	}

	cases := []struct {
		name   string
		mutate func(*bond.ASWInput)
	}{
		{"zero settlement", func(in *bond.ASWInput) { in.SettlementDate = time.Time{} }},
		{"non-positive notional", func(in *bond.ASWInput) { in.Notional = 0 }},
		{"nil curve", func(in *bond.ASWInput) { in.DiscountCurve = nil }},
		{"bad frequency", func(in *bond.ASWInput) { in.FloatFreqMonths = 0 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := valid
			tc.mutate(&in)
			if _, err := b.ASWSpread(in); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
