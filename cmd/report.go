// =============================================================================
// Sales Report - Report Command
// =============================================================================
//
// The 'report' command runs the whole pipeline: load configuration, load
// the optional group rules, fold every input file into the aggregate, and
// print the table.
//
// Inputs are processed strictly in the order given, one row at a time, so
// the output is deterministic for a given invocation. Any configuration,
// read or parse error aborts the run; no partial table is printed.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-report/internal/config"
	"github.com/ginjaninja78/sales-report/internal/groups"
	"github.com/ginjaninja78/sales-report/internal/report"
)

// groupsFile is the path to the group rules file, shared with 'check'.
var groupsFile string

// byRevenue sorts the table by revenue instead of unit sales.
var byRevenue bool

var reportCmd = &cobra.Command{
	Use:   "report [flags] PATH ...",
	Short: "Summarize unit sales and revenue from sales export files",
	Long: `The report command reads the given sales export files and prints a
fixed-width table of units sold and revenue per product, sorted
best-selling first, followed by grand totals.

Each PATH is a CSV or XLSX sales export, or a directory containing them.
Files from different platforms can be mixed in one run; column headers
are matched against the configured aliases per field.

With --groups, related line items are collapsed into named groups. The
rules file holds one rule per line in the form "NAME | REGEX"; rules are
applied top to bottom and the first match wins.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(
		&groupsFile,
		"groups",
		"g",
		"",
		"Group related line items using this rules file",
	)
	reportCmd.Flags().BoolVarP(
		&byRevenue,
		"revenue",
		"r",
		false,
		"Sort products by revenue (instead of unit sales)",
	)
}

// runReport executes the pipeline and writes the table to stdout.
func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, "report").With("run_id", uuid.New().String())

	var rules *groups.Rules
	if groupsFile != "" {
		rules, err = groups.LoadFile(groupsFile)
		if err != nil {
			return err
		}
		logger.Debug("loaded group rules", "file", groupsFile, "rules", rules.Len())
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}
	logger.Debug("processing input files", "files", len(paths))

	rep, err := report.Build(paths, rules, cfg.ColumnAliases)
	if err != nil {
		return err
	}
	rep.SortByRevenue = byRevenue || cfg.SortByRevenue
	logger.Debug("report built",
		"products", rep.Len(),
		"total_units", rep.TotalUnits(),
		"total_revenue", strings.TrimSpace(rep.TotalRevenue().String()),
	)
	return rep.WriteTable(cmd.OutOrStdout())
}

// expandPaths turns the positional arguments into a flat, ordered list of
// input files. A directory argument is expanded to the sales files it
// contains, in name order; a directory with none is an error rather than
// a silently empty report.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		found := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".csv", ".xlsx":
				paths = append(paths, filepath.Join(arg, entry.Name()))
				found++
			}
		}
		if found == 0 {
			return nil, fmt.Errorf("no sales files (.csv or .xlsx) in directory %s", arg)
		}
	}
	return paths, nil
}
