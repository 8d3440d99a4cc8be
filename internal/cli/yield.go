package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/zcb/bond"
)

func newYieldCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yield",
		Short: "Yield to maturity from one or more clean prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bondFromFlags(cmd)
			if err != nil {
				return err
			}
			settlement, err := dateFlag(cmd, "settlement")
			if err != nil {
				return err
			}
			prices, _ := cmd.Flags().GetFloat64Slice("price")
			if len(prices) == 0 {
				return fmt.Errorf("--price is required")
			}

			ytms, err := b.YieldToMaturityBatch(settlement, prices, bond.ConventionZero)
			if err != nil {
				return err
			}
			for i, y := range ytms {
				fmt.Printf("price %10.4f  ytm %10.6f%%\n", prices[i], y*100)
			}
			return nil
		},
	}

	cmd.Flags().String("settlement", "", "settlement date (YYYY-MM-DD)")
	cmd.Flags().Float64Slice("price", nil, "clean price per 100 (repeatable)")
	return cmd
}

func newRiskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Duration and convexity at a yield",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bondFromFlags(cmd)
			if err != nil {
				return err
			}
			settlement, err := dateFlag(cmd, "settlement")
			if err != nil {
				return err
			}
			ytm, _ := cmd.Flags().GetFloat64("ytm")

			dd, err := b.DollarDuration(settlement, ytm, bond.ConventionZero)
			if err != nil {
				return err
			}
			mac, err := b.MacauleyDuration(settlement, ytm, bond.ConventionZero)
			if err != nil {
				return err
			}
			mod, err := b.ModifiedDuration(settlement, ytm, bond.ConventionZero)
			if err != nil {
				return err
			}
			conv, err := b.ConvexityFromYTM(settlement, ytm, bond.ConventionZero)
			if err != nil {
				return err
			}

			fmt.Printf("Dollar duration:   %12.6f\n", dd)
			fmt.Printf("Macauley duration: %12.6f\n", mac)
			fmt.Printf("Modified duration: %12.6f\n", mod)
			fmt.Printf("Convexity:         %12.6f\n", conv)
			return nil
		},
	}

	cmd.Flags().String("settlement", "", "settlement date (YYYY-MM-DD)")
	cmd.Flags().Float64("ytm", 0, "yield to maturity (decimal)")
	return cmd
}

func newRorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ror",
		Short: "Holding-period return between two yields",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bondFromFlags(cmd)
			if err != nil {
				return err
			}
			begin, err := dateFlag(cmd, "begin")
			if err != nil {
				return err
			}
			end, err := dateFlag(cmd, "end")
			if err != nil {
				return err
			}
			beginYTM, _ := cmd.Flags().GetFloat64("begin-ytm")
			endYTM, _ := cmd.Flags().GetFloat64("end-ytm")

			ret, err := b.RateOfReturn(begin, end, beginYTM, endYTM, bond.ConventionZero)
			if err != nil {
				return err
			}

			fmt.Printf("Simple return: %10.6f%%\n", ret.Simple*100)
			fmt.Printf("IRR:           %10.6f%%\n", ret.IRR*100)
			fmt.Printf("PnL:           %12.6f\n", ret.PnL)
			return nil
		},
	}

	cmd.Flags().String("begin", "", "buy date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "sell date (YYYY-MM-DD)")
	cmd.Flags().Float64("begin-ytm", 0, "yield at purchase (decimal)")
	cmd.Flags().Float64("end-ytm", 0, "yield at sale (decimal)")
	return cmd
}
