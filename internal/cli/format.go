// Package cli provides formatting and rendering utilities for terminal output
// and the text of generated reports.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatCurrency formats whole dollars with separators.
// e.g., 131200 -> "$131,200", -500 -> "-$500"
func FormatCurrency(n int64) string {
	if n < 0 {
		return "-$" + FormatNumber(-n)
	}
	return "$" + FormatNumber(n)
}

// FormatCompact abbreviates a count.
// e.g., 1200 -> "1.2K", 161200 -> "161K", 1380000 -> "1.38M"
func FormatCompact(n int64) string {
	if n < 0 {
		return "-" + FormatCompact(-n)
	}
	d := decimal.NewFromInt(n)
	switch {
	case n >= 1_000_000:
		return d.Div(decimal.NewFromInt(1_000_000)).Round(2).String() + "M"
	case n >= 10_000:
		k := d.Div(decimal.NewFromInt(1_000)).Round(0)
		if k.GreaterThanOrEqual(decimal.NewFromInt(1_000)) {
			return "1M"
		}
		return k.String() + "K"
	case n >= 1_000:
		return d.Div(decimal.NewFromInt(1_000)).Round(1).String() + "K"
	default:
		return d.String()
	}
}

// FormatCompactCurrency abbreviates dollars for slides and headlines.
// e.g., 1200 -> "$1.2K", 161200 -> "$161K", 1280000 -> "$1.28M"
func FormatCompactCurrency(n int64) string {
	if n < 0 {
		return "-$" + FormatCompact(-n)
	}
	return "$" + FormatCompact(n)
}

// FormatCurrencyRange joins two compact amounts, e.g. "$131K - $1.28M".
func FormatCurrencyRange(lo, hi int64) string {
	return FormatCompactCurrency(lo) + " - " + FormatCompactCurrency(hi)
}

// FormatDecimal formats a float with the fewest digits that round-trip.
// e.g., 99.7 -> "99.7", 100 -> "100"
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatPercent formats a percentage already scaled to 0-100.
// e.g., 95.6 -> "95.6%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatTitle turns an identifier into display text.
// e.g., "first_dollar" -> "First Dollar"
func FormatTitle(id string) string {
	return titler.String(strings.ReplaceAll(id, "_", " "))
}
