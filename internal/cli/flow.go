package cli

import (
	"fmt"

	"github.com/rustyeddy/tvm/journal"
	"github.com/rustyeddy/tvm/pkg/money"
	"github.com/rustyeddy/tvm/schedule"
	"github.com/rustyeddy/tvm/tvm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flowOpts struct {
	file    string
	annuity int
	payment float64
	rate    float64
	horizon float64
}

func newFlowCmd(a *app) *cobra.Command {
	o := &flowOpts{}

	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Value a cash-flow schedule",
		Long: `Value a series of cash flows at period 0 (pv) or at a horizon (fv).

The schedule comes from, in order of preference:
  --annuity N --payment X   level payments at periods 1..N
  --file flows.csv          a CSV with time and amount columns
  the config file           cashflow.file or cashflow.flows

Examples:
  tvm flow pv -f flows.csv -r 0.05
  tvm flow fv --annuity 10 --payment 100 --horizon 10
  tvm flow export -f flows.csv`,
	}

	cmd.PersistentFlags().StringVarP(&o.file, "file", "f", "", "CSV schedule (time,amount)")
	cmd.PersistentFlags().IntVar(&o.annuity, "annuity", 0, "use N level payments at periods 1..N")
	cmd.PersistentFlags().Float64Var(&o.payment, "payment", 0, "annuity payment amount")

	pv := &cobra.Command{
		Use:   "pv",
		Short: "Present value of the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFlow(cmd, o, journal.KindPresentValue)
		},
	}
	pv.Flags().Float64VarP(&o.rate, "rate", "r", 0, "compound rate per period (default from config)")

	fv := &cobra.Command{
		Use:   "fv",
		Short: "Future value of the schedule at the horizon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFlow(cmd, o, journal.KindFutureValue)
		},
	}
	fv.Flags().Float64VarP(&o.rate, "rate", "r", 0, "compound rate per period (default from config)")
	fv.Flags().Float64Var(&o.horizon, "horizon", 0, "valuation period (default from config)")

	export := &cobra.Command{
		Use:   "export",
		Short: "Print the resolved schedule as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := a.loadFlows(cmd, o)
			if err != nil {
				return err
			}
			return schedule.WriteCSV(cmd.OutOrStdout(), cf)
		},
	}

	cmd.AddCommand(pv, fv, export)
	return cmd
}

func (a *app) loadFlows(cmd *cobra.Command, o *flowOpts) (tvm.CashFlow, error) {
	switch {
	case o.annuity > 0:
		return tvm.Annuity(o.annuity, o.payment), nil
	case cmd.Flags().Changed("annuity"):
		return tvm.CashFlow{}, fmt.Errorf("--annuity must be positive, got %d", o.annuity)
	case o.file != "":
		return schedule.LoadCSV(o.file)
	default:
		cf, err := schedule.FromConfig(a.cfg.CashFlow)
		if err != nil {
			return tvm.CashFlow{}, fmt.Errorf("load schedule: %w", err)
		}
		return cf, nil
	}
}

func (a *app) runFlow(cmd *cobra.Command, o *flowOpts, kind journal.Kind) error {
	cf, err := a.loadFlows(cmd, o)
	if err != nil {
		return err
	}

	rate := o.rate
	if !cmd.Flags().Changed("rate") {
		if rate, err = a.cfg.Valuation.EffectiveRate(); err != nil {
			return err
		}
	}
	horizon := o.horizon
	if !cmd.Flags().Changed("horizon") {
		horizon = a.cfg.Valuation.Horizon
	}

	var v float64
	if kind == journal.KindPresentValue {
		v, err = tvm.CashFlowPresentValue(cf, rate)
		horizon = 0
	} else {
		v, err = tvm.CashFlowFutureValue(cf, horizon, rate)
	}
	if err != nil {
		return fmt.Errorf("value schedule: %w", err)
	}

	a.log.Info("schedule valued",
		zap.String("kind", string(kind)),
		zap.Int("flows", cf.Len()),
		zap.Float64("rate", rate),
		zap.Float64("horizon", horizon),
		zap.Float64("result", v))

	val := a.cfg.Valuation
	fmt.Fprintln(cmd.OutOrStdout(), money.FormatCurrency(v, val.Decimals, val.Currency))

	return a.save(journal.Valuation{
		Kind:    kind,
		Formula: "cashflow",
		Rate:    rate,
		Periods: horizon,
		Flows:   cf.Len(),
		Result:  v,
	})
}
