// =============================================================================
// Sales Report - Money
// =============================================================================
//
// Fixed-point USD amounts, stored as an integer number of cents. All
// arithmetic is exact integer addition and multiplication; the only
// float conversion happens in String, for display.
//
// =============================================================================

package money

import (
	"fmt"
	"strconv"
	"strings"
)

// displayWidth is the column width used when rendering an amount,
// chosen to fit seven-figure revenue with sign and separator.
const displayWidth = 12

// USD is an amount of US dollars held as a signed count of cents.
//
// The zero value is $0.00 and is ready to use.
type USD int64

// ParseError reports a string that could not be read as a dollar amount.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid amount %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a decimal dollar string such as "1,234.56" and returns the
// amount in cents (123456). It strips the decimal point and any comma
// thousands separators, then parses what remains as an integer, so the
// input is expected to carry exactly two fractional digits the way sales
// exports write prices. Anything left that is not an optionally signed
// digit string fails with a *ParseError.
func Parse(s string) (USD, error) {
	cleaned := strings.NewReplacer(".", "", ",", "").Replace(strings.TrimSpace(s))
	cents, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return USD(cents), nil
}

// Add returns the exact sum of u and v.
func (u USD) Add(v USD) USD {
	return u + v
}

// Mul returns u multiplied by a unit quantity n.
func (u USD) Mul(n int) USD {
	return u * USD(n)
}

// Dollars returns the amount as a floating-point dollar value.
// Display only: never feed the result back into stored state.
func (u USD) Dollars() float64 {
	return float64(u) / 100
}

// String renders the amount right-aligned to a fixed width with exactly
// two decimal places, e.g. "     3409.15".
func (u USD) String() string {
	return fmt.Sprintf("%*.2f", displayWidth, u.Dollars())
}
