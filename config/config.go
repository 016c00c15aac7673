package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/tvm/tvm"
	"gopkg.in/yaml.v3"
)

// Config represents a complete valuation run configuration
type Config struct {
	Valuation ValuationConfig `json:"valuation" yaml:"valuation"`
	CashFlow  CashFlowConfig  `json:"cashflow" yaml:"cashflow"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

// ValuationConfig holds the rate and the valuation point
type ValuationConfig struct {
	Rate        float64 `json:"rate" yaml:"rate"`               // per period, e.g. 0.05
	Compounding float64 `json:"compounding" yaml:"compounding"` // 0: rate is already effective
	Horizon     float64 `json:"horizon" yaml:"horizon"`         // future value point, in periods
	Currency    string  `json:"currency" yaml:"currency"`
	Decimals    int32   `json:"decimals" yaml:"decimals"`
}

// CashFlowConfig points at a CSV schedule or lists flows inline
type CashFlowConfig struct {
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
	Flows []Flow `json:"flows,omitempty" yaml:"flows,omitempty"`
}

// Flow is one inline cash flow entry
type Flow struct {
	Time   float64 `json:"time" yaml:"time"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Type    string `json:"type" yaml:"type"` // "csv" or "sqlite"
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	CSVFile string `json:"csv_file,omitempty" yaml:"csv_file,omitempty"`
}

// LogConfig selects the zap logger level and encoding
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug|info|warn|error
	Format string `json:"format" yaml:"format"` // console|json
}

func (l *LogConfig) applyDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "console"
	}
}

// EffectiveRate returns the per-period rate used for discounting. When
// Compounding is set, Rate is treated as nominal and converted.
func (v ValuationConfig) EffectiveRate() (float64, error) {
	if v.Compounding == 0 {
		return v.Rate, nil
	}
	r, err := tvm.EffectiveAnnualRateChecked(v.Compounding, v.Rate)
	if err != nil {
		return 0, fmt.Errorf("effective rate: %w", err)
	}
	return r, nil
}

// CashFlow converts the inline flows to a tvm.CashFlow.
func (c CashFlowConfig) CashFlow() tvm.CashFlow {
	var cf tvm.CashFlow
	for _, f := range c.Flows {
		cf.Add(f.Time, f.Amount)
	}
	return cf
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.Log.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	v := c.Valuation
	if v.Rate <= -1 {
		return fmt.Errorf("valuation.rate must be greater than -1")
	}
	if v.Compounding < 0 {
		return fmt.Errorf("valuation.compounding must not be negative")
	}
	if v.Horizon < 0 {
		return fmt.Errorf("valuation.horizon must not be negative")
	}
	if v.Currency == "" {
		return fmt.Errorf("valuation.currency is required")
	}
	if v.Decimals < 0 || v.Decimals > 8 {
		return fmt.Errorf("valuation.decimals must be between 0 and 8")
	}
	if _, err := v.EffectiveRate(); err != nil {
		return err
	}

	if c.CashFlow.File != "" && len(c.CashFlow.Flows) > 0 {
		return fmt.Errorf("cashflow.file and cashflow.flows are mutually exclusive")
	}

	if c.Journal.Enabled {
		switch c.Journal.Type {
		case "sqlite":
			if c.Journal.DBPath == "" {
				return fmt.Errorf("journal db_path required for SQLite type")
			}
		case "csv":
			if c.Journal.CSVFile == "" {
				return fmt.Errorf("journal csv_file required for CSV type")
			}
		default:
			return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug|info|warn|error")
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'console' or 'json'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Valuation: ValuationConfig{
			Rate:     0.05,
			Horizon:  3,
			Currency: "USD",
			Decimals: 2,
		},
		CashFlow: CashFlowConfig{
			Flows: []Flow{
				{Time: 0, Amount: 100},
				{Time: 1, Amount: 100},
				{Time: 2, Amount: 100},
			},
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./tvm.sqlite",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
