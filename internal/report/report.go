// =============================================================================
// Sales Report - Aggregation
// =============================================================================
//
// A Report folds sales records into per-product unit and revenue totals,
// keyed by display name: the product's own line-item name, or the name of
// the first matching group rule when group rules are configured. Grand
// totals are maintained alongside and always equal the sum over the
// per-product aggregates.
//
// =============================================================================

package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ginjaninja78/sales-report/internal/csvparser"
	"github.com/ginjaninja78/sales-report/internal/groups"
	"github.com/ginjaninja78/sales-report/internal/money"
	"github.com/ginjaninja78/sales-report/internal/types"
	"github.com/ginjaninja78/sales-report/internal/xlsxparser"
)

// Product accumulates sales of a single display name.
type Product struct {
	Units   int
	Revenue money.USD
}

// Report holds aggregated sales data.
//
// Create one with New, feed it files with ReadFile (or records directly
// with Add), and render it with WriteTable or String. A Report owns its
// product map and group rules exclusively; nothing mutates it after the
// build completes.
type Report struct {
	rules    *groups.Rules
	aliases  types.ColumnAliases
	products map[string]*Product
	units    int
	revenue  money.USD

	// SortByRevenue selects the presentation order: revenue-descending
	// when set, unit-sales-descending (the default) otherwise.
	SortByRevenue bool
}

// New returns an empty report. rules may be nil, in which case every
// product is reported under its own line-item name.
func New(rules *groups.Rules, aliases types.ColumnAliases) *Report {
	return &Report{
		rules:    rules,
		aliases:  aliases,
		products: map[string]*Product{},
	}
}

// Build reads every file in paths, in order, into a single report.
// Files ending in .xlsx are read as workbooks; everything else is read as
// CSV. Any failure aborts the build; no partial report is returned.
func Build(paths []string, rules *groups.Rules, aliases types.ColumnAliases) (*Report, error) {
	r := New(rules, aliases)
	for _, path := range paths {
		if err := r.ReadFile(path); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ReadFile folds the sales records from the file at path into the report.
func (r *Report) ReadFile(path string) error {
	forEach := csvparser.ForEachFile
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		forEach = xlsxparser.ForEachFile
	}
	return forEach(path, r.aliases, func(rec types.SalesRecord) error {
		r.Add(rec)
		return nil
	})
}

// Add folds a single record into the report.
func (r *Report) Add(rec types.SalesRecord) {
	name := rec.Name
	if group, ok := r.rules.Resolve(rec.Name); ok {
		name = group
	}
	prod, ok := r.products[name]
	if !ok {
		prod = &Product{}
		r.products[name] = prod
	}
	revenue := rec.UnitPrice.Mul(rec.Quantity)
	prod.Units += rec.Quantity
	prod.Revenue = prod.Revenue.Add(revenue)
	r.units += rec.Quantity
	r.revenue = r.revenue.Add(revenue)
}

// Product returns the aggregate for a display name.
func (r *Report) Product(name string) (Product, bool) {
	prod, ok := r.products[name]
	if !ok {
		return Product{}, false
	}
	return *prod, true
}

// Len returns the number of distinct display names in the report.
func (r *Report) Len() int {
	return len(r.products)
}

// TotalUnits returns the grand total of units sold.
func (r *Report) TotalUnits() int {
	return r.units
}

// TotalRevenue returns the grand total revenue.
func (r *Report) TotalRevenue() money.USD {
	return r.revenue
}

// ProductsByUnitSales returns the display names sorted by unit sales,
// best-selling first. Names with equal unit sales sort alphabetically.
func (r *Report) ProductsByUnitSales() []string {
	return r.sorted(func(a, b *Product) bool { return a.Units > b.Units })
}

// ProductsByRevenue returns the display names sorted by revenue, highest
// first. Names with equal revenue sort alphabetically.
func (r *Report) ProductsByRevenue() []string {
	return r.sorted(func(a, b *Product) bool { return a.Revenue > b.Revenue })
}

func (r *Report) sorted(better func(a, b *Product) bool) []string {
	names := make([]string, 0, len(r.products))
	for name := range r.products {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := r.products[names[i]], r.products[names[j]]
		if better(a, b) != better(b, a) {
			return better(a, b)
		}
		return names[i] < names[j]
	})
	return names
}

// String renders the report as a table, for callers that want it as a
// value rather than streamed to a writer.
func (r *Report) String() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = r.WriteTable(&sb)
	return sb.String()
}

var _ fmt.Stringer = (*Report)(nil)
