// Package pricing derives the marketplace price of a single listing row.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vk/tcgprice/internal/model"
)

// RowError reports a data row whose low price is missing or not a number.
type RowError struct {
	Row         int
	ProductName string
	Value       string
	Err         error
}

// Error implements the error interface for RowError.
func (e *RowError) Error() string {
	return fmt.Sprintf("Malformed or missing %s at row %d with name %s.", model.ColLowPrice, e.Row, e.ProductName)
}

// Unwrap returns the underlying parse error, if any.
func (e *RowError) Unwrap() error {
	return e.Err
}

// Outcome describes the price written for one row.
type Outcome struct {
	Low     float64
	Price   string
	Floored bool
}

// Apply sets the marketplace price of r to its low price clamped to floor.
// row is the 1-based line number of the record, counting the header as row 1.
// r is left unmodified when an error is returned.
func Apply(r *model.Record, floor float64, row int) (Outcome, error) {
	raw, ok := r.Get(model.ColLowPrice)
	if !ok {
		return Outcome{}, newRowError(r, row, raw, nil)
	}
	low, err := ParsePrice(raw)
	if err != nil {
		return Outcome{}, newRowError(r, row, raw, err)
	}

	out := Outcome{Low: low, Floored: !(low >= floor)}
	out.Price = Format(Clamp(low, floor))
	if !r.Set(model.ColMarketplacePrice, out.Price) {
		return Outcome{}, fmt.Errorf("row %d: column %q not in header", row, model.ColMarketplacePrice)
	}
	return out, nil
}

func newRowError(r *model.Record, row int, raw string, err error) *RowError {
	name, _ := r.Get(model.ColProductName)
	return &RowError{Row: row, ProductName: name, Value: raw, Err: err}
}

// ParsePrice parses a decimal price, ignoring surrounding whitespace.
// Hexadecimal notation is rejected. Values too large to represent parse as
// ±Inf and values too small as zero.
func ParsePrice(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	digits := strings.TrimLeft(trimmed, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, fmt.Errorf("invalid price %q: not a decimal number", s)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return v, nil
}

// Clamp returns low when it is at least floor, and floor otherwise. A NaN
// low price never satisfies the comparison and yields floor.
func Clamp(low, floor float64) float64 {
	if low >= floor {
		return low
	}
	return floor
}

// Format renders a price with exactly two fractional digits.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
