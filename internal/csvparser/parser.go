// =============================================================================
// Sales Report - CSV Parser
// =============================================================================
//
// Reads sales records out of CSV exports. The header row is resolved
// against the configured column aliases, then each data row is decoded
// and handed to the caller in file order. Reading is fail-fast: the first
// malformed row rejects the whole file with a *types.RecordError, so a
// report is never built from partially-read data.
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/ginjaninja78/sales-report/internal/types"
)

// ForEachFile opens the CSV file at path and calls fn once per sales
// record, in file order.
func ForEachFile(path string, aliases types.ColumnAliases, fn func(types.SalesRecord) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &types.RecordError{File: path, Err: err}
	}
	defer f.Close()
	return ForEach(f, path, aliases, fn)
}

// ForEach reads sales records from r and calls fn once per record.
// source names the origin of the data in error messages.
//
// The first row must be a header containing a recognized item name column
// and unit price column; a quantity column is optional and defaults each
// row to one unit when absent. Any read or decode failure aborts with a
// *types.RecordError identifying the source and row.
func ForEach(r io.Reader, source string, aliases types.ColumnAliases, fn func(types.SalesRecord) error) error {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &types.RecordError{File: source, Err: types.ErrEmptyFile}
		}
		return &types.RecordError{File: source, Row: 1, Err: err}
	}
	cols, err := aliases.Locate(header)
	if err != nil {
		return &types.RecordError{File: source, Row: 1, Err: err}
	}

	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &types.RecordError{File: source, Row: row, Err: err}
		}
		rec, err := cols.Decode(record)
		if err != nil {
			return &types.RecordError{File: source, Row: row, Err: err}
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// ParseFile reads every sales record in the CSV file at path.
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
