package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gregorydgoyins/comicmarket/risk"
	"github.com/gregorydgoyins/comicmarket/valuation"
	"gopkg.in/yaml.v3"
)

// Config is the complete platform configuration.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Market  MarketConfig  `json:"market" yaml:"market"`
}

// ServerConfig contains HTTP API parameters.
type ServerConfig struct {
	Listen string `json:"listen" yaml:"listen"`
}

// JournalConfig selects the audit journal backend.
type JournalConfig struct {
	Type        string `json:"type" yaml:"type"` // "sqlite", "csv" or "none"
	DBPath      string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	UpdatesFile string `json:"updates_file,omitempty" yaml:"updates_file,omitempty"`
	ChecksFile  string `json:"checks_file,omitempty" yaml:"checks_file,omitempty"`
}

// MarketConfig carries the tunable pricing parameters. The multiplier
// maps are sparse overrides: any key present replaces the stock value,
// everything else keeps its default.
type MarketConfig struct {
	StartingBalance float64          `json:"starting_balance" yaml:"starting_balance"`
	Limits          risk.OrderLimits `json:"limits" yaml:"limits"`

	GradeMultipliers     map[string]float64 `json:"grade_multipliers,omitempty" yaml:"grade_multipliers,omitempty"`
	AgeMultipliers       map[string]float64 `json:"age_multipliers,omitempty" yaml:"age_multipliers,omitempty"`
	SignatureMultipliers map[string]float64 `json:"signature_multipliers,omitempty" yaml:"signature_multipliers,omitempty"`

	Spread SpreadConfig `json:"spread" yaml:"spread"`
}

// SpreadConfig parameterizes the spread curve.
type SpreadConfig struct {
	Base  float64 `json:"base" yaml:"base"`
	Decay float64 `json:"decay" yaml:"decay"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Tick  float64 `json:"tick" yaml:"tick"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration out, choosing the format by
// file extension (.yaml/.yml for YAML, anything else JSON).
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

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}

	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite journal")
		}
	case "csv":
		if c.Journal.UpdatesFile == "" || c.Journal.ChecksFile == "" {
			return fmt.Errorf("journal.updates_file and journal.checks_file required for csv journal")
		}
	case "none":
	default:
		return fmt.Errorf("journal.type must be 'sqlite', 'csv' or 'none'")
	}

	if c.Market.StartingBalance <= 0 {
		return fmt.Errorf("market.starting_balance must be positive")
	}

	l := c.Market.Limits
	if l.MinOrderSize <= 0 || l.MaxOrderSize <= 0 {
		return fmt.Errorf("market.limits order sizes must be positive")
	}
	if l.MaxOrderSize <= l.MinOrderSize {
		return fmt.Errorf("market.limits.max_order_size must exceed min_order_size")
	}
	if l.MarginRequirement <= 0 || l.MarginRequirement > 1 {
		return fmt.Errorf("market.limits.margin_requirement must be in (0, 1]")
	}

	for g, m := range c.Market.GradeMultipliers {
		if m <= 0 {
			return fmt.Errorf("grade multiplier for %q must be positive", g)
		}
	}
	for a, m := range c.Market.AgeMultipliers {
		if m <= 0 {
			return fmt.Errorf("age multiplier for %q must be positive", a)
		}
	}
	for s, m := range c.Market.SignatureMultipliers {
		if m < 1 {
			return fmt.Errorf("signature multiplier for %q must be >= 1", s)
		}
	}

	sp := c.Market.Spread
	if sp.Base <= 0 || sp.Decay <= 0 || sp.Tick <= 0 {
		return fmt.Errorf("market.spread base, decay and tick must be positive")
	}
	if sp.Min <= 0 || sp.Max < sp.Min {
		return fmt.Errorf("market.spread bounds must satisfy 0 < min <= max")
	}

	return nil
}

// Tables builds the valuation tables: stock defaults with any
// configured overrides applied on top.
func (c *Config) Tables() valuation.Tables {
	t := valuation.DefaultTables()
	for g, m := range c.Market.GradeMultipliers {
		t.Grade[valuation.Grade(g)] = m
	}
	for a, m := range c.Market.AgeMultipliers {
		t.Age[valuation.AgeBracket(a)] = m
	}
	for s, m := range c.Market.SignatureMultipliers {
		t.Signature[valuation.SignatureTag(s)] = m
	}
	return t
}

// SpreadParams converts the spread section to engine parameters.
func (c *Config) SpreadParams() valuation.SpreadParams {
	return valuation.SpreadParams{
		Base:  c.Market.Spread.Base,
		Decay: c.Market.Spread.Decay,
		Min:   c.Market.Spread.Min,
		Max:   c.Market.Spread.Max,
		Tick:  c.Market.Spread.Tick,
	}
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	sp := valuation.DefaultSpreadParams()
	return &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./comicmarket.db",
		},
		Market: MarketConfig{
			StartingBalance: 100_000,
			Limits:          risk.DefaultLimits(),
			Spread: SpreadConfig{
				Base:  sp.Base,
				Decay: sp.Decay,
				Min:   sp.Min,
				Max:   sp.Max,
				Tick:  sp.Tick,
			},
		},
	}
}
