package cli

import (
	"fmt"

	"github.com/rustyeddy/tvm/journal"
	"github.com/rustyeddy/tvm/pkg/money"
	"github.com/rustyeddy/tvm/tvm"
	"github.com/spf13/cobra"
)

func newRateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate conversions",
	}

	var (
		nominal     float64
		compounding float64
	)

	effective := &cobra.Command{
		Use:   "effective",
		Short: "Effective rate of a nominal rate compounded n times per period",
		Long: `Convert a nominal rate to the effective rate per period: (1 + r/n)^n - 1.

Example:
  tvm rate effective --nominal 0.12 -n 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("nominal") {
				nominal = a.cfg.Valuation.Rate
			}
			v, err := tvm.EffectiveAnnualRateChecked(compounding, nominal)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), money.Format(v, 8))

			return a.save(journal.Valuation{
				Kind:    journal.KindRate,
				Formula: "effective",
				Rate:    nominal,
				Periods: compounding,
				Result:  v,
			})
		},
	}
	effective.Flags().Float64Var(&nominal, "nominal", 0, "nominal rate (default from config)")
	effective.Flags().Float64VarP(&compounding, "compounding", "n", 12, "compounding periods per rate period")

	cmd.AddCommand(effective)
	return cmd
}
