// =============================================================================
// Sales Report - XLSX Parser
// =============================================================================
//
// Reads sales records out of XLSX workbook exports, for platforms that
// hand out spreadsheets rather than CSVs. Only the first sheet is read:
// row one is the header, resolved against the same column aliases the CSV
// parser uses, and the remaining rows are decoded in order. Blank padding
// rows are skipped; anything else malformed rejects the whole file.
//
// =============================================================================

package xlsxparser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-report/internal/types"
)

// ForEachFile opens the workbook at path and calls fn once per sales
// record on the first sheet, in row order. Failures are reported as a
// *types.RecordError identifying the file and row.
func ForEachFile(path string, aliases types.ColumnAliases, fn func(types.SalesRecord) error) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return &types.RecordError{File: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &types.RecordError{File: path, Err: fmt.Errorf("workbook has no sheets")}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return &types.RecordError{File: path, Err: err}
	}
	if len(rows) == 0 {
		return &types.RecordError{File: path, Err: types.ErrEmptyFile}
	}

	cols, err := aliases.Locate(rows[0])
	if err != nil {
		return &types.RecordError{File: path, Row: 1, Err: err}
	}
	for i, row := range rows[1:] {
		if isEmpty(row) {
			continue
		}
		rec, err := cols.Decode(row)
		if err != nil {
			return &types.RecordError{File: path, Row: i + 2, Err: err}
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// ParseFile reads every sales record on the first sheet of the workbook
// at path.
func ParseFile(path string, aliases types.ColumnAliases) ([]types.SalesRecord, error) {
	var records []types.SalesRecord
	err := ForEachFile(path, aliases, func(rec types.SalesRecord) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// isEmpty reports whether every cell in the row is blank. Spreadsheets
// often carry trailing or decorative blank rows that are not data.
func isEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
