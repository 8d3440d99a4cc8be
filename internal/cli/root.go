// Package cli provides the zcb command-line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/zcb/bond"
	"github.com/meenmo/zcb/utils"
)

// App holds the dependencies shared by the subcommands.
type App struct {
	Logger zerolog.Logger
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(logger zerolog.Logger) *cobra.Command {
	app := &App{Logger: logger}

	root := &cobra.Command{
		Use:           "zcb",
		Short:         "Zero coupon bond pricing and risk analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("issue", "", "bond issue date (YYYY-MM-DD)")
	root.PersistentFlags().String("maturity", "", "bond maturity date (YYYY-MM-DD)")
	root.PersistentFlags().Float64("issue-price", 0, "issue price per 100")
	root.PersistentFlags().Float64("face", 100, "face amount held")

	root.AddCommand(
		newPriceCmd(app),
		newYieldCmd(app),
		newRiskCmd(app),
		newRorCmd(app),
		newCurvePriceCmd(app),
	)
	return root
}

// bondFromFlags builds the bond entity from the persistent flags.
func bondFromFlags(cmd *cobra.Command) (*bond.ZeroCouponBond, error) {
	issue, err := dateFlag(cmd, "issue")
	if err != nil {
		return nil, err
	}
	maturity, err := dateFlag(cmd, "maturity")
	if err != nil {
		return nil, err
	}
	issuePrice, _ := cmd.Flags().GetFloat64("issue-price")
	face, _ := cmd.Flags().GetFloat64("face")

	return bond.NewZeroCouponBond(issue, maturity, issuePrice, face)
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("--%s is required", name)
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}
