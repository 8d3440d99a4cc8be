package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/zcb/bond"
	"github.com/meenmo/zcb/calendar"
)

func newPriceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price from yield to maturity",
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

			app.Logger.Debug().
				Str("settlement", settlement.Format("2006-01-02")).
				Float64("ytm", ytm).
				Msg("pricing from yield")

			full, err := b.FullPriceFromYTM(settlement, ytm, bond.ConventionZero)
			if err != nil {
				return err
			}
			clean, err := b.CleanPriceFromYTM(settlement, ytm, bond.ConventionZero)
			if err != nil {
				return err
			}
			acc, err := b.AccruedInterest(settlement, 0, calendar.Weekend)
			if err != nil {
				return err
			}
			principal, err := b.Principal(settlement, ytm, bond.ConventionZero)
			if err != nil {
				return err
			}

			fmt.Printf("Full price:       %12.6f\n", full)
			fmt.Printf("Clean price:      %12.6f\n", clean)
			fmt.Printf("Accrued interest: %12.6f\n", acc.Interest)
			fmt.Printf("Principal:        %12.6f\n", principal)
			return nil
		},
	}

	cmd.Flags().String("settlement", "", "settlement date (YYYY-MM-DD)")
	cmd.Flags().Float64("ytm", 0, "yield to maturity (decimal, 0.05 = 5%)")
	return cmd
}
