package cli

import (
	"fmt"
	"os"

	"github.com/rustyeddy/tvm/config"
	"github.com/rustyeddy/tvm/internal/logging"
	"github.com/rustyeddy/tvm/journal"
	"github.com/rustyeddy/tvm/pkg/id"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand once the root
// PersistentPreRunE has run.
type app struct {
	configPath string
	dbPath     string
	logLevel   string
	logFormat  string
	record     bool

	cfg *config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "tvm",
		Short: "Time-value-of-money calculator",
		Long: `tvm computes interest and discount factors, present and future values of
single amounts and cash-flow schedules, and effective rates.

Results can be recorded to a SQLite or CSV valuation journal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite journal database (overrides config)")
	cmd.PersistentFlags().BoolVar(&a.record, "journal", false, "Record results to the journal")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: console|json")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if a.log != nil {
			_ = a.log.Sync()
		}
	}

	cmd.AddCommand(
		newFactorCmd(a),
		newValueCmd(a, "fv"),
		newValueCmd(a, "pv"),
		newRateCmd(a),
		newFlowCmd(a),
		newConfigCmd(a),
		newJournalCmd(a),
		newVersionCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.LoadFromFile(a.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Journal.Type = "sqlite"
		cfg.Journal.DBPath = a.dbPath
	}
	if flags.Changed("journal") {
		cfg.Journal.Enabled = a.record
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.cfg = cfg
	a.log = logger.Named("tvm")
	a.log.Debug("config ready",
		zap.String("config", a.configPath),
		zap.Float64("rate", cfg.Valuation.Rate),
		zap.Bool("journal", cfg.Journal.Enabled))
	return nil
}

func (a *app) openJournal() (journal.Journal, error) {
	switch a.cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(a.cfg.Journal.CSVFile)
	default:
		return journal.NewSQLite(a.cfg.Journal.DBPath)
	}
}

// save writes v to the journal when journaling is enabled.
func (a *app) save(v journal.Valuation) error {
	if !a.cfg.Journal.Enabled {
		return nil
	}

	v.ID = id.New()
	createdAt, err := id.Time(v.ID)
	if err != nil {
		return err
	}
	v.CreatedAt = createdAt
	if v.Currency == "" {
		v.Currency = a.cfg.Valuation.Currency
	}

	j, err := a.openJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	if err := j.Record(v); err != nil {
		return fmt.Errorf("record valuation: %w", err)
	}

	a.log.Info("valuation recorded",
		zap.String("id", v.ID),
		zap.String("kind", string(v.Kind)),
		zap.String("journal", a.cfg.Journal.Type))
	return nil
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
