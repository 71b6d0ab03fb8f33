package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given args and returns captured output.
// Package-level flag variables are reset first, since cobra only writes
// them for flags present on the command line.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile = ""
	verbose = false
	groupsFile = ""
	byRevenue = false
	checkGroupsFile = ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestReportCommandPrintsUnitSalesTable(t *testing.T) {
	out, err := execute(t, "report", "testdata/orders.csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "Product / Group")
	assert.True(t, strings.HasPrefix(lines[2], "Widget"), "unit sales order puts Widget first, got %q", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Gadget"))
	assert.True(t, strings.HasPrefix(lines[5], "Total"))
	assert.Contains(t, lines[5], "160.00")
}

func TestReportCommandSortsByRevenueWithFlag(t *testing.T) {
	out, err := execute(t, "report", "--revenue", "testdata/orders.csv")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[2], "Gadget"), "revenue order puts Gadget first, got %q", lines[2])
}

func TestReportCommandAppliesGroupRules(t *testing.T) {
	out, err := execute(t, "report", "--groups", "testdata/groups", "testdata/orders.csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Widgets")
	assert.NotContains(t, out, "Widget ")
}

func TestReportCommandFailsOnMissingInput(t *testing.T) {
	_, err := execute(t, "report", "testdata/absent.csv")
	require.Error(t, err)
}

func TestReportCommandFailsOnBadGroupsFile(t *testing.T) {
	_, err := execute(t, "report", "--groups", "testdata/absent-groups", "testdata/orders.csv")
	require.Error(t, err)
}

func TestReportCommandRequiresAtLeastOnePath(t *testing.T) {
	_, err := execute(t, "report")
	require.Error(t, err)
}

func TestCheckCommandValidatesGroups(t *testing.T) {
	out, err := execute(t, "check", "--groups", "testdata/groups")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration: OK")
	assert.Contains(t, out, "group rules: OK (1 rules)")
}

func TestVersionCommandPrintsBuildInfo(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Go Version:")
}

func TestExpandPathsExpandsDirectories(t *testing.T) {
	paths, err := expandPaths([]string{"testdata"})
	require.NoError(t, err)
	assert.Contains(t, paths, "testdata/orders.csv")
	for _, p := range paths {
		assert.NotContains(t, p, "groups", "non-sales files are not picked up")
	}
}

func TestExpandPathsFailsOnDirWithNoSalesFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := expandPaths([]string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sales files")
}
