package xlsxparser_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-report/internal/money"
	"github.com/ginjaninja78/sales-report/internal/types"
	"github.com/ginjaninja78/sales-report/internal/xlsxparser"
)

// writeWorkbook saves an XLSX file whose first sheet holds the given rows.
func writeWorkbook(t *testing.T, rows ...[]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseFileReadsWorkbookRows(t *testing.T) {
	t.Parallel()
	path := writeWorkbook(t,
		[]any{"Quantity", "Item Name", "Item Price ($)"},
		[]any{"2", "Widget", "5.00"},
		[]any{"1", "The Power of Go: Tools", "31.00"},
	)

	records, err := xlsxparser.ParseFile(path, types.DefaultAliases())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, types.SalesRecord{Quantity: 2, Name: "Widget", UnitPrice: money.USD(500)}, records[0])
	assert.Equal(t, types.SalesRecord{Quantity: 1, Name: "The Power of Go: Tools", UnitPrice: money.USD(3100)}, records[1])
}

func TestParseFileSkipsBlankPaddingRows(t *testing.T) {
	t.Parallel()
	path := writeWorkbook(t,
		[]any{"Quantity", "Item Name", "Item Price ($)"},
		[]any{"1", "Widget", "5.00"},
		[]any{"", "", ""},
		[]any{"1", "Gadget", "7.50"},
	)

	records, err := xlsxparser.ParseFile(path, types.DefaultAliases())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Gadget", records[1].Name)
}

func TestParseFileFailsOnBadRowWithRowNumber(t *testing.T) {
	t.Parallel()
	path := writeWorkbook(t,
		[]any{"Quantity", "Item Name", "Item Price ($)"},
		[]any{"1", "Widget", "5.00"},
		[]any{"1", "Widget", "free"},
	)

	_, err := xlsxparser.ParseFile(path, types.DefaultAliases())
	var recErr *types.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, path, recErr.File)
	assert.Equal(t, 3, recErr.Row)
}

func TestParseFileFailsWhenHeaderUnrecognized(t *testing.T) {
	t.Parallel()
	path := writeWorkbook(t,
		[]any{"Count", "Thing", "Cost"},
		[]any{"1", "Widget", "5.00"},
	)

	_, err := xlsxparser.ParseFile(path, types.DefaultAliases())
	var recErr *types.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 1, recErr.Row)
}

func TestParseFileFailsOnMissingFile(t *testing.T) {
	t.Parallel()
	_, err := xlsxparser.ParseFile(filepath.Join(t.TempDir(), "absent.xlsx"), types.DefaultAliases())
	var recErr *types.RecordError
	require.ErrorAs(t, err, &recErr)
}
