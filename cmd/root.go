// =============================================================================
// Sales Report - Root Command
// =============================================================================
//
// Root of the CLI. Subcommands:
//
//   sales report   - summarize sales export files
//   sales check    - validate configuration and group rules
//   sales version  - print build information
//
// The root command owns the global flags (--config, --verbose) and the
// construction of the diagnostic logger shared by the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-report/internal/config"
	"github.com/ginjaninja78/sales-report/internal/log"
)

// cfgFile is the path to the YAML configuration file, if any.
// Everything has a built-in default, so the flag is optional.
var cfgFile string

// verbose forces debug-level logging regardless of the configured level.
var verbose bool

// rootCmd is the base command; invoked bare it just prints help.
var rootCmd = &cobra.Command{
	Use:   "sales",
	Short: "Summarise e-commerce sales exports into a units/revenue table",
	Long: `sales reads one or more sales export files (CSV or XLSX), optionally
collapses related line-item names into named groups using regular
expressions, and prints a table of unit sales and revenue per product
or group, with grand totals.

Amounts are handled as exact integer cents throughout; nothing is
rounded until the final display.

Example usage:
  sales report orders.csv                       # summary sorted by unit sales
  sales report --revenue orders.csv extra.xlsx  # sorted by revenue instead
  sales report --groups groups.txt exports/     # group related products
  sales check --groups groups.txt               # validate without processing`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the CLI. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file (optional)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)
}

// newLogger builds the diagnostic logger for one command run.
func newLogger(cfg *config.Config, component string) *log.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	return log.New(level, component)
}
