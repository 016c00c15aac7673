package cli

import (
	"fmt"
	"math"

	"github.com/rustyeddy/tvm/journal"
	"github.com/rustyeddy/tvm/pkg/money"
	"github.com/rustyeddy/tvm/tvm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type factorFunc struct {
	name    string
	short   string
	fn      func(t, r float64) float64
	checked func(t, r float64) (float64, error)
}

var factorFuncs = []factorFunc{
	{
		name:  "simple",
		short: "Simple interest factor 1 + t*r",
		fn:    tvm.SimpleInterestFactor,
		checked: func(t, r float64) (float64, error) {
			return tvm.SimpleInterestFactor(t, r), nil
		},
	},
	{"simple-discount", "Simple discount factor 1 / (1 + t*r)", tvm.SimpleDiscountFactor, tvm.SimpleDiscountFactorChecked},
	{"compound", "Compound interest factor (1+r)^t", tvm.CompoundInterestFactor, tvm.CompoundInterestFactorChecked},
	{"compound-discount", "Compound discount factor 1 / (1+r)^t", tvm.CompoundDiscountFactor, tvm.CompoundDiscountFactorChecked},
}

func newFactorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factor",
		Short: "Interest and discount factors of a unit principal",
		Long: `Print the value of one unit of principal under a rate convention.

Examples:
  tvm factor compound -t 2 -r 0.1
  tvm factor simple-discount -t 2 -r -0.5 --strict`,
	}

	for _, f := range factorFuncs {
		cmd.AddCommand(newFactorSubCmd(a, f))
	}
	return cmd
}

func newFactorSubCmd(a *app, f factorFunc) *cobra.Command {
	var (
		periods float64
		rate    float64
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   f.name,
		Short: f.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rate") {
				rate = a.cfg.Valuation.Rate
			}

			var v float64
			if strict {
				var err error
				v, err = f.checked(periods, rate)
				if err != nil {
					return err
				}
			} else {
				v = f.fn(periods, rate)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					a.log.Warn("factor is not finite",
						zap.String("factor", f.name),
						zap.Float64("periods", periods),
						zap.Float64("rate", rate))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), money.Format(v, 8))

			return a.save(journal.Valuation{
				Kind:    journal.KindFactor,
				Formula: f.name,
				Rate:    rate,
				Periods: periods,
				Result:  v,
			})
		},
	}

	cmd.Flags().Float64VarP(&periods, "periods", "t", 1, "number of periods (fractional allowed)")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "rate per period (default from config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on domain errors instead of printing Inf/NaN")
	return cmd
}
