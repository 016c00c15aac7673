package cli

import (
	"fmt"

	"github.com/rustyeddy/tvm/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate configuration files",
		Long: `Manage configuration files for valuations.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  tvm config init -o tvm.yaml
  tvm config validate -f tvm.yaml`,
	}

	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if err := cfg.SaveToFile(output); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Created default configuration: %s\n", output)
			fmt.Fprintln(out, "\nEdit the file and run with:")
			fmt.Fprintf(out, "  tvm --config %s flow pv\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "tvm.yaml", "output config file path")

	var path string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(path)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Configuration valid: %s\n", path)
			fmt.Fprintf(out, "  Rate: %g (compounding %g, %s)\n", cfg.Valuation.Rate, cfg.Valuation.Compounding, cfg.Valuation.Currency)
			if cfg.CashFlow.File != "" {
				fmt.Fprintf(out, "  Schedule: %s\n", cfg.CashFlow.File)
			} else {
				fmt.Fprintf(out, "  Schedule: %d inline flows\n", len(cfg.CashFlow.Flows))
			}
			if cfg.Journal.Enabled {
				fmt.Fprintf(out, "  Journal: %s\n", cfg.Journal.Type)
			} else {
				fmt.Fprintln(out, "  Journal: disabled")
			}
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&path, "file", "f", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("file")

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
