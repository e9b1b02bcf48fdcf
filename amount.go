package finance

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// All ledger amounts are Iraqi dinars; USD only appears through the
// exchange-rate conversion helpers. Amounts stay decimal end to end so
// derived sums are exact.

var amountZero = decimal.Zero

// D builds a decimal amount from an integer, for literals in code and tests.
func D(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ParseAmount parses user input into an amount, best effort: anything that
// is not a number, including the empty string, yields zero. This mirrors the
// permissive coercion the rest of the system is specified against; rejecting
// bad input here is a product decision that has not been made.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatIQD renders an amount with the dinar's display conventions.
func FormatIQD(d decimal.Decimal) string { return format(d, money.IQD) }

// FormatUSD renders an amount with the dollar's display conventions.
func FormatUSD(d decimal.Decimal) string { return format(d, money.USD) }

func format(d decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	minor := d.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
