package cli

import (
	"fmt"

	"github.com/rustyeddy/tvm/journal"
	"github.com/rustyeddy/tvm/pkg/money"
	"github.com/rustyeddy/tvm/tvm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newValueCmd builds the single-amount "fv" or "pv" command.
func newValueCmd(a *app, kind string) *cobra.Command {
	var (
		amount  float64
		periods float64
		rate    float64
	)

	short := "Future value of a single amount compounded t periods"
	if kind == "pv" {
		short = "Present value of a single amount due in t periods"
	}

	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rate") {
				r, err := a.cfg.Valuation.EffectiveRate()
				if err != nil {
					return err
				}
				rate = r
			}

			var (
				v   float64
				err error
			)
			if kind == "pv" {
				_, err = tvm.CompoundDiscountFactorChecked(periods, rate)
				v = tvm.CompoundPresentValue(amount, periods, rate)
			} else {
				_, err = tvm.CompoundInterestFactorChecked(periods, rate)
				v = tvm.CompoundFutureValue(amount, periods, rate)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}

			a.log.Debug("single amount valued",
				zap.String("kind", kind),
				zap.Float64("amount", amount),
				zap.Float64("periods", periods),
				zap.Float64("rate", rate),
				zap.Float64("result", v))

			val := a.cfg.Valuation
			fmt.Fprintln(cmd.OutOrStdout(), money.FormatCurrency(v, val.Decimals, val.Currency))

			k := journal.KindFutureValue
			if kind == "pv" {
				k = journal.KindPresentValue
			}
			return a.save(journal.Valuation{
				Kind:    k,
				Formula: "compound",
				Rate:    rate,
				Periods: periods,
				Amount:  amount,
				Result:  v,
			})
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "principal amount")
	cmd.Flags().Float64VarP(&periods, "periods", "t", 1, "number of periods (fractional allowed)")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "compound rate per period (default from config)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
