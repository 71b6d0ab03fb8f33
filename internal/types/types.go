// =============================================================================
// Sales Report - Shared Types
// =============================================================================
//
// This package holds the sales record model and the column-alias schema
// shared by the CSV and XLSX parsers, so that both read the same logical
// fields without importing each other.
//
// Sales platforms disagree on header names for the same three fields:
// Squarespace exports "Lineitem quantity" / "Lineitem name" / "Lineitem
// price", Gumroad-style exports use "Quantity" / "Item Name" / "Item Price
// ($)". Alias resolution happens per field, so mixed schemas work as long
// as each logical field is present under one of its recognized names.
//
// =============================================================================

package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/sales-report/internal/money"
)

// ErrEmptyFile reports a sales file that contains no header row at all.
var ErrEmptyFile = errors.New("file has no header row")

// SalesRecord is one line item from a sales export: a quantity of units
// sold of a named product at a unit price. Records are transient; they are
// folded into the report as soon as they are read.
type SalesRecord struct {
	Quantity  int
	Name      string
	UnitPrice money.USD
}

// RecordError reports a sales file that could not be read: an unreadable
// file, a header missing a required column, or a malformed row. A single
// bad row rejects the whole file; there is no skip-and-continue.
type RecordError struct {
	File string
	Row  int
	Err  error
}

func (e *RecordError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("reading %s: row %d: %v", e.File, e.Row, e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.File, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// ColumnAliases lists the recognized header names for each logical field.
// Matching is exact after trimming surrounding whitespace.
type ColumnAliases struct {
	Quantity []string `yaml:"quantity"`
	Name     []string `yaml:"name"`
	Price    []string `yaml:"price"`
}

// DefaultAliases returns the header names found in the sales exports the
// tool is normally fed.
func DefaultAliases() ColumnAliases {
	return ColumnAliases{
		Quantity: []string{"Lineitem quantity", "Quantity"},
		Name:     []string{"Lineitem name", "Item Name"},
		Price:    []string{"Lineitem price", "Item Price ($)"},
	}
}

// Columns holds the resolved position of each logical field within a
// header row. Quantity is -1 in one-row-per-unit export schemas that have
// no quantity column; such rows count as a single unit each.
type Columns struct {
	Quantity int
	Name     int
	Price    int
}

// Locate resolves the alias set against a header row. Name and price are
// required; quantity is optional.
func (a ColumnAliases) Locate(header []string) (Columns, error) {
	cols := Columns{
		Quantity: indexOf(header, a.Quantity),
		Name:     indexOf(header, a.Name),
		Price:    indexOf(header, a.Price),
	}
	if cols.Name < 0 {
		return Columns{}, fmt.Errorf("no item name column (recognized: %s)", strings.Join(a.Name, ", "))
	}
	if cols.Price < 0 {
		return Columns{}, fmt.Errorf("no unit price column (recognized: %s)", strings.Join(a.Price, ", "))
	}
	return cols, nil
}

// Decode reads one data row into a SalesRecord.
func (c Columns) Decode(row []string) (SalesRecord, error) {
	rec := SalesRecord{Quantity: 1}
	if c.Quantity >= 0 {
		raw, err := field(row, c.Quantity, "quantity")
		if err != nil {
			return SalesRecord{}, err
		}
		qty, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return SalesRecord{}, fmt.Errorf("parsing quantity %q: %w", raw, err)
		}
		if qty < 0 {
			return SalesRecord{}, fmt.Errorf("negative quantity %d", qty)
		}
		rec.Quantity = qty
	}
	name, err := field(row, c.Name, "item name")
	if err != nil {
		return SalesRecord{}, err
	}
	rec.Name = name
	raw, err := field(row, c.Price, "unit price")
	if err != nil {
		return SalesRecord{}, err
	}
	price, err := money.Parse(raw)
	if err != nil {
		return SalesRecord{}, err
	}
	rec.UnitPrice = price
	return rec, nil
}

func field(row []string, idx int, what string) (string, error) {
	if idx >= len(row) {
		return "", fmt.Errorf("missing %s field (column %d of a %d-field row)", what, idx+1, len(row))
	}
	return row[idx], nil
}

func indexOf(header []string, aliases []string) int {
	for i, h := range header {
		h = strings.TrimSpace(h)
		for _, a := range aliases {
			if h == a {
				return i
			}
		}
	}
	return -1
}
