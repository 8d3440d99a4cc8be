package bond

import (
	"fmt"
	"time"

	"github.com/meenmo/zcb/calendar"
	"github.com/meenmo/zcb/curve"
	"github.com/meenmo/zcb/daycount"
	"github.com/meenmo/zcb/schedule"
	"github.com/meenmo/zcb/utils"
)

// ASWInput holds the parameters for a par asset swap spread calculation.
type ASWInput struct {
	SettlementDate time.Time
	// CleanPrice is the quoted bond price per 100.
	CleanPrice float64
	// Notional held; scales the bond PV and the float leg PV01.
	Notional float64

	// Float leg convention over which the spread is paid.
	FloatFreqMonths int
	FloatDayCount   daycount.Convention
	Calendar        calendar.ID

	DiscountCurve curve.DiscountCurve
}

// ASWResult is the output of ASWSpread.
type ASWResult struct {
	// SpreadBP is the par asset swap spread in basis points.
	SpreadBP float64
	// PVBondRF is the bond PV on the discount curve, ignoring credit.
	PVBondRF float64
	// PV01 is the PV of 1bp on the float leg schedule.
	PV01 float64
}

// ASWSpread computes the par asset swap spread of the bond using the
// approximation
//
//	ASW = (PV_bond^rf - P_dirty) / PV01
//
// where PV01 is the PV of receiving 1bp on the floating leg from settlement
// to maturity. For a zero the risk-free bond PV is just the discounted
// redemption.
func (b *ZeroCouponBond) ASWSpread(in ASWInput) (ASWResult, error) {
	if in.SettlementDate.IsZero() {
		return ASWResult{}, fmt.Errorf("ASWSpread: SettlementDate is required")
	}
	if in.Notional <= 0 {
		return ASWResult{}, fmt.Errorf("ASWSpread: Notional must be positive")
	}
	if in.DiscountCurve == nil {
		return ASWResult{}, fmt.Errorf("ASWSpread: DiscountCurve is required")
	}
	if in.FloatFreqMonths <= 0 {
		return ASWResult{}, fmt.Errorf("ASWSpread: FloatFreqMonths must be positive")
	}

	accrued, err := b.accruedPerPar(in.SettlementDate)
	if err != nil {
		return ASWResult{}, fmt.Errorf("ASWSpread: %w", err)
	}
	dirtyPrice := (in.CleanPrice + accrued) / b.par * in.Notional

	pvBondRF := in.DiscountCurve.DF(b.MaturityDate) * b.redemption * in.Notional

	periods, err := schedule.Generate(in.SettlementDate, b.MaturityDate, in.FloatFreqMonths, in.Calendar)
	if err != nil {
		return ASWResult{}, fmt.Errorf("ASWSpread: float leg schedule: %w", err)
	}

	pv01 := 0.0
	for _, p := range periods {
		accrual := daycount.Fraction(p.Start, p.End, in.FloatDayCount)
		pv01 += in.Notional * accrual * 1e-4 * in.DiscountCurve.DF(p.Pay)
	}
	if pv01 == 0 {
		return ASWResult{}, fmt.Errorf("ASWSpread: PV01 is zero (settlement %s)", in.SettlementDate.Format(utils.DateLayout))
	}

	return ASWResult{
		SpreadBP: (pvBondRF - dirtyPrice) / pv01,
		PVBondRF: pvBondRF,
		PV01:     pv01,
	}, nil
}
