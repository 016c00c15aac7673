package cli

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tvm/journal"
	"github.com/spf13/cobra"
)

func newJournalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query the valuation journal",
		Long: `Query and display recorded valuations from the SQLite journal.

Subcommands:
  show   - Show a valuation by ID
  recent - List the most recent valuations
  day    - List valuations recorded on a specific day

Examples:
  tvm journal show 01HV8Z3K6Y...
  tvm journal recent -n 5
  tvm journal day 2024-01-15`,
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a valuation by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSQLite(func(j *journal.SQLite) error {
				v, err := j.Get(args[0])
				if err != nil {
					return fmt.Errorf("get valuation: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), journal.FormatOrg(v, a.cfg.Valuation.Decimals))
				return nil
			})
		},
	}

	var limit int
	recent := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent valuations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSQLite(func(j *journal.SQLite) error {
				vs, err := j.Recent(limit)
				if err != nil {
					return fmt.Errorf("query valuations: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), journal.FormatOrgList(vs, a.cfg.Valuation.Decimals))
				return nil
			})
		},
	}
	recent.Flags().IntVarP(&limit, "limit", "n", 10, "number of valuations")

	day := &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "List valuations recorded on a specific day (UTC)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := dayBounds(time.UTC, args[0])
			if err != nil {
				return fmt.Errorf("date: %w", err)
			}
			return a.withSQLite(func(j *journal.SQLite) error {
				vs, err := j.ListBetween(start, end)
				if err != nil {
					return fmt.Errorf("query valuations: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), journal.FormatOrgList(vs, a.cfg.Valuation.Decimals))
				return nil
			})
		},
	}

	cmd.AddCommand(show, recent, day)
	return cmd
}

func (a *app) withSQLite(fn func(j *journal.SQLite) error) error {
	if a.cfg.Journal.DBPath == "" {
		return fmt.Errorf("no SQLite journal configured (use --db)")
	}
	j, err := journal.NewSQLite(a.cfg.Journal.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	return fn(j)
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
