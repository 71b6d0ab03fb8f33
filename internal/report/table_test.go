package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-report/internal/money"
	"github.com/ginjaninja78/sales-report/internal/report"
	"github.com/ginjaninja78/sales-report/internal/types"
)

func widgetGadgetReport() *report.Report {
	r := report.New(nil, types.DefaultAliases())
	r.Add(types.SalesRecord{Quantity: 3, Name: "Widget", UnitPrice: money.USD(500)})
	r.Add(types.SalesRecord{Quantity: 1, Name: "Gadget", UnitPrice: money.USD(15000)})
	return r
}

func TestWriteTableRendersUnitSalesOrder(t *testing.T) {
	t.Parallel()
	r := widgetGadgetReport()

	var sb strings.Builder
	require.NoError(t, r.WriteTable(&sb))

	want := strings.Join([]string{
		"Product / Group  Units      Revenue",
		"--------------------------",
		"Widget      3        15.00",
		"Gadget      1       150.00",
		"--------------------------",
		"Total       4       165.00",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestWriteTableRendersRevenueOrder(t *testing.T) {
	t.Parallel()
	r := widgetGadgetReport()
	r.SortByRevenue = true

	out := r.String()
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[2], "Gadget"), "highest revenue first, got %q", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Widget"))
}

func TestWriteTableEmptyReportRendersTotalsOnly(t *testing.T) {
	t.Parallel()
	r := report.New(nil, types.DefaultAliases())

	var sb strings.Builder
	require.NoError(t, r.WriteTable(&sb))

	want := strings.Join([]string{
		"Product / Group  Units      Revenue",
		strings.Repeat("-", 35),
		"Total                0         0.00",
		"",
	}, "\n")
	// The name column falls back to the heading width; no body rows.
	assert.Equal(t, strings.Count(want, "\n"), strings.Count(sb.String(), "\n"))
	assert.Equal(t, want, sb.String())
}

func TestWriteTableColumnWidthFollowsLongestName(t *testing.T) {
	t.Parallel()
	longName := "For the Love of Go: Video/Book Bundle"
	r := report.New(nil, types.DefaultAliases())
	r.Add(types.SalesRecord{Quantity: 1, Name: longName, UnitPrice: money.USD(9700)})
	r.Add(types.SalesRecord{Quantity: 2, Name: "Go mentoring", UnitPrice: money.USD(15000)})

	out := r.String()
	wantWidth := len(longName) + 20
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Len(t, line, wantWidth, "line %q", line)
	}
}
