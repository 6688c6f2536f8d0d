package main

import (
	"math"

	"github.com/iov-one/settle/errors"
	"github.com/shopspring/decimal"
)

// amountDecimals is the number of decimal places of all assets. One unit
// is 10^7 of the smallest amount.
const amountDecimals = 7

var maxAmount = decimal.New(math.MaxInt64, -amountDecimals)

// parseAmount converts a decimal string into the smallest unit. Zero and
// negative amounts are accepted here and rejected by message validation.
func parseAmount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrAmount, "%q", s)
	}
	if d.Exponent() < -amountDecimals {
		return 0, errors.Wrapf(errors.ErrAmount, "%q has more than %d decimal places", s, amountDecimals)
	}
	if d.Abs().GreaterThan(maxAmount) {
		return 0, errors.Wrapf(errors.ErrOverflow, "%q", s)
	}
	return d.Shift(amountDecimals).IntPart(), nil
}

// formatAmount renders an amount of the smallest unit with all decimal
// places.
func formatAmount(v int64) string {
	return decimal.New(v, -amountDecimals).StringFixed(amountDecimals)
}
