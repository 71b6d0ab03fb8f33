package report

import (
	"fmt"
	"io"
	"strings"
)

// Column headings and widths for the rendered table. The name column is
// sized to the longest display name present; the units and revenue widths
// are fixed (revenue matches the money display width).
const (
	nameHeading  = "Product / Group"
	unitsWidth   = 6
	revenueWidth = 12
)

// WriteTable renders the report as a fixed-width table: a heading row, a
// dashed rule, one row per display name in the selected sort order, a
// second rule, and a totals row.
//
// With zero products the name column falls back to the width of its
// heading and the body is empty, leaving a totals-only table.
func (r *Report) WriteTable(w io.Writer) error {
	width := len(nameHeading)
	if r.Len() > 0 {
		width = 0
		for name := range r.products {
			if len(name) > width {
				width = len(name)
			}
		}
	}
	rule := strings.Repeat("-", width+unitsWidth+revenueWidth+2)

	if _, err := fmt.Fprintf(w, "%-*s %*s %*s\n",
		width, nameHeading, unitsWidth, "Units", revenueWidth, "Revenue"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	names := r.ProductsByUnitSales()
	if r.SortByRevenue {
		names = r.ProductsByRevenue()
	}
	for _, name := range names {
		prod := r.products[name]
		if _, err := fmt.Fprintf(w, "%-*s %*d %s\n",
			width, name, unitsWidth, prod.Units, prod.Revenue); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%-*s %*d %s\n", width, "Total", unitsWidth, r.units, r.revenue)
	return err
}
