package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/meenmo/zcb/curve"
	"github.com/meenmo/zcb/utils"
)

// dfRow is one discount factor node in a curve CSV (header: date,df).
type dfRow struct {
	Date string  `csv:"date"`
	DF   float64 `csv:"df"`
}

// survivalRow is one survival probability node (header: date,q).
type survivalRow struct {
	Date string  `csv:"date"`
	Q    float64 `csv:"q"`
}

func newCurvePriceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curveprice",
		Short: "Price off a discount curve, optionally with an OAS or a survival curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bondFromFlags(cmd)
			if err != nil {
				return err
			}
			settlement, err := dateFlag(cmd, "settlement")
			if err != nil {
				return err
			}
			curvePath, _ := cmd.Flags().GetString("curve")
			if curvePath == "" {
				return fmt.Errorf("--curve is required")
			}
			valuation, err := dateFlag(cmd, "curve-date")
			if err != nil {
				return err
			}

			dc, err := loadDiscountCurve(curvePath, valuation)
			if err != nil {
				return err
			}
			app.Logger.Debug().Str("curve", curvePath).Msg("discount curve loaded")

			full, err := b.FullPriceFromDiscountCurve(settlement, dc)
			if err != nil {
				return err
			}
			clean, err := b.CleanPriceFromDiscountCurve(settlement, dc)
			if err != nil {
				return err
			}
			fmt.Printf("Curve full price:  %12.6f\n", full)
			fmt.Printf("Curve clean price: %12.6f\n", clean)

			if cmd.Flags().Changed("oas") {
				oas, _ := cmd.Flags().GetFloat64("oas")
				px, err := b.FullPriceFromOAS(settlement, dc, oas)
				if err != nil {
					return err
				}
				fmt.Printf("OAS full price:    %12.6f (oas %.4f%%)\n", px, oas*100)
			}

			if survivalPath, _ := cmd.Flags().GetString("survival"); survivalPath != "" {
				recovery, _ := cmd.Flags().GetFloat64("recovery")
				sc, err := loadSurvivalCurve(survivalPath, valuation)
				if err != nil {
					return err
				}
				px, err := b.FullPriceFromSurvivalCurve(settlement, dc, sc, recovery)
				if err != nil {
					return err
				}
				fmt.Printf("Risky full price:  %12.6f (recovery %.2f)\n", px, recovery)
			}
			return nil
		},
	}

	cmd.Flags().String("settlement", "", "settlement date (YYYY-MM-DD)")
	cmd.Flags().String("curve", "", "discount factor CSV (columns: date,df)")
	cmd.Flags().String("curve-date", "", "curve valuation date (YYYY-MM-DD)")
	cmd.Flags().Float64("oas", 0, "option-adjusted spread (decimal)")
	cmd.Flags().String("survival", "", "survival probability CSV (columns: date,q)")
	cmd.Flags().Float64("recovery", 0.4, "recovery rate on default")
	return cmd
}

func loadDiscountCurve(path string, valuation time.Time) (*curve.NodeCurve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curve: %w", err)
	}
	defer f.Close()

	var rows []*dfRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse curve %s: %w", path, err)
	}

	nodes := make(map[time.Time]float64, len(rows))
	for _, r := range rows {
		d, err := utils.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("curve date %q: %w", r.Date, err)
		}
		nodes[d] = r.DF
	}
	return curve.NewNodeCurve(valuation, nodes)
}

func loadSurvivalCurve(path string, valuation time.Time) (*curve.NodeSurvivalCurve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open survival curve: %w", err)
	}
	defer f.Close()

	var rows []*survivalRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse survival curve %s: %w", path, err)
	}

	nodes := make(map[time.Time]float64, len(rows))
	for _, r := range rows {
		d, err := utils.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("survival date %q: %w", r.Date, err)
		}
		nodes[d] = r.Q
	}
	return curve.NewNodeSurvivalCurve(valuation, nodes)
}
