package launchpad

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The rollup denominates raises in Tether; register it once so go-money
// can format reference-currency values.
var usdt = money.AddCurrency("USDT", "₮", "$1", ".", ",", 2)

// USDT converts an amount of raise units into its reference-currency
// display string at the fixed 100,000:1 rate.
func (a Amount) USDT() string {
	minor := a.value.Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(UnitsPerUSDT))
	return money.New(minor.IntPart(), "USDT").Display()
}

// Compact renders an amount of raise units as a compact USDT figure
// ("1.2M", "425.0K") for board views.
func (a Amount) Compact() string {
	v := a.value.Div(decimal.NewFromInt(UnitsPerUSDT)).InexactFloat64()
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// formatAdaptive renders a price-like decimal with precision that widens
// as the value shrinks. Below 1e-6 it falls back to exponential
// notation, which stays readable where a fixed-point string would be a
// wall of zeros.
func formatAdaptive(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	abs := d.Abs()
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return d.StringFixed(2)
	case abs.GreaterThanOrEqual(decimal.RequireFromString("0.01")):
		return d.StringFixed(4)
	case abs.GreaterThanOrEqual(decimal.RequireFromString("0.0001")):
		return d.StringFixed(6)
	case abs.GreaterThanOrEqual(decimal.RequireFromString("0.000001")):
		return d.StringFixed(8)
	default:
		return formatExponent(d)
	}
}

// formatExponent renders d as "m.mme-x" with two significant decimals.
func formatExponent(d decimal.Decimal) string {
	f, _ := d.Float64()
	s := fmt.Sprintf("%.2e", f)
	// %.2e gives a padded exponent ("1.25e-07"); trim the leading zero
	// to match the compact form ("1.25e-7").
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, exp := s[:i], s[i+1:]
		sign := ""
		if len(exp) > 0 && (exp[0] == '-' || exp[0] == '+') {
			if exp[0] == '-' {
				sign = "-"
			}
			exp = exp[1:]
		}
		exp = strings.TrimLeft(exp, "0")
		if exp == "" {
			exp = "0"
		}
		return mant + "e" + sign + exp
	}
	return s
}
