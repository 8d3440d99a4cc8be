package bond_test

import (
	"errors"
	"math"
	"testing"

	"github.com/meenmo/zcb/bond"
)

func TestRateOfReturn_FlatYieldEarnsTheYield(t *testing.T) {
	t.Parallel()
	b := testBond(t)

	// Held one year at an unchanged 5% yield in the compound regime, the
	// position earns the yield.
	ret, err := b.RateOfReturn(date(2025, 1, 1), date(2026, 1, 1), 0.05, 0.05, bond.ConventionZero)
	if err != nil {
		t.Fatalf("RateOfReturn: %v", err)
	}
	if math.Abs(ret.Simple-0.05) > 1e-6 {
		t.Fatalf("simple return = %.8f, want about 0.05", ret.Simple)
	}
	if math.Abs(ret.IRR-0.05) > 1e-6 {
		t.Fatalf("irr = %.8f, want about 0.05", ret.IRR)
	}
	if ret.PnL <= 0 {
		t.Fatalf("pnl = %g, want > 0", ret.PnL)
	}
}

func TestRateOfReturn_IRRSolvesNPV(t *testing.T) {
	t.Parallel()
	b := testBond(t)

	begin := date(2025, 1, 1)
	end := date(2027, 7, 1)
	ret, err := b.RateOfReturn(begin, end, 0.06, 0.04, bond.ConventionZero)
	if err != nil {
		t.Fatalf("RateOfReturn: %v", err)
	}

	// With only a buy and a sell flow, the IRR has a closed form:
	// (sell/buy)^(1/t) - 1.
	buy, err := b.FullPriceFromYTM(begin, 0.06, bond.ConventionZero)
	if err != nil {
		t.Fatalf("FullPriceFromYTM: %v", err)
	}
	sell, err := b.FullPriceFromYTM(end, 0.04, bond.ConventionZero)
	if err != nil {
		t.Fatalf("FullPriceFromYTM: %v", err)
	}
	years := end.Sub(begin).Hours() / 24.0 / 365.0
	want := math.Pow(sell/buy, 1.0/years) - 1.0
	if math.Abs(ret.IRR-want) > 1e-7 {
		t.Fatalf("irr = %.10f, want %.10f", ret.IRR, want)
	}
	if math.Abs(ret.PnL-(sell-buy)) > 1e-9 {
		t.Fatalf("pnl = %.8f, want %.8f", ret.PnL, sell-buy)
	}
}

func TestRateOfReturn_BandBypass(t *testing.T) {
	t.Parallel()
	b := testBond(t)

	// A large yield drop over a single day annualizes far beyond the
	// bracket, so the root search is skipped and IRR equals the simple
	// return exactly.
	ret, err := b.RateOfReturn(date(2025, 1, 1), date(2025, 1, 2), 0.10, 0.05, bond.ConventionZero)
	if err != nil {
		t.Fatalf("RateOfReturn: %v", err)
	}
	if ret.Simple <= 5.0 {
		t.Fatalf("simple return = %g, expected outside the (-0.9999, 5) band", ret.Simple)
	}
	if ret.IRR != ret.Simple {
		t.Fatalf("irr = %g, want exactly the simple return %g", ret.IRR, ret.Simple)
	}
}

func TestRateOfReturn_BadPeriod(t *testing.T) {
	t.Parallel()
	b := testBond(t)

	if _, err := b.RateOfReturn(date(2026, 1, 1), date(2025, 1, 1), 0.05, 0.05, bond.ConventionZero); !errors.Is(err, bond.ErrBadPeriod) {
		t.Fatalf("want ErrBadPeriod, got %v", err)
	}
	if _, err := b.RateOfReturn(date(2025, 1, 1), date(2025, 1, 1), 0.05, 0.05, bond.ConventionZero); !errors.Is(err, bond.ErrBadPeriod) {
		t.Fatalf("want ErrBadPeriod for zero-length period, got %v", err)
	}
}

func TestRateOfReturn_ConventionError(t *testing.T) {
	t.Parallel()
	b := testBond(t)

	if _, err := b.RateOfReturn(date(2025, 1, 1), date(2026, 1, 1), 0.05, 0.05, bond.ConventionUKDMO); !errors.Is(err, bond.ErrConvention) {
		t.Fatalf("want ErrConvention, got %v", err)
	}
}
