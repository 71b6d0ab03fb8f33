// =============================================================================
// Sales Report - Configuration
// =============================================================================
//
// Optional YAML configuration for the tool. Everything has a built-in
// default, so no config file is needed for the common case; a file is
// only required when a sales platform uses column headers the tool does
// not already recognize, or to change the default sort order.
//
// Example config.yaml:
//
//   sort_by_revenue: true
//   log_level: debug
//   column_aliases:
//     quantity: ["Lineitem quantity", "Quantity", "Qty"]
//     name: ["Lineitem name", "Item Name", "Product"]
//     price: ["Lineitem price", "Item Price ($)", "Unit Price"]
//
// =============================================================================

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/sales-report/internal/types"
)

// Config holds the application settings.
type Config struct {
	// ColumnAliases is the set of recognized header names for each
	// logical sales-record field.
	ColumnAliases types.ColumnAliases `yaml:"column_aliases"`

	// SortByRevenue makes revenue order the default sort. The --revenue
	// flag still forces revenue order for a single run.
	SortByRevenue bool `yaml:"sort_by_revenue"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ColumnAliases: types.DefaultAliases(),
		LogLevel:      "info",
	}
}

// Load reads the configuration file at path, layered over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var problems []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log_level %q: must be debug, info, warn or error", c.LogLevel))
	}
	if len(c.ColumnAliases.Name) == 0 {
		problems = append(problems, "column_aliases.name must list at least one header")
	}
	if len(c.ColumnAliases.Price) == 0 {
		problems = append(problems, "column_aliases.price must list at least one header")
	}
	for _, group := range [][]string{c.ColumnAliases.Quantity, c.ColumnAliases.Name, c.ColumnAliases.Price} {
		for _, alias := range group {
			if strings.TrimSpace(alias) == "" {
				problems = append(problems, "column aliases must not be blank")
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// SlogLevel maps the configured log level onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
