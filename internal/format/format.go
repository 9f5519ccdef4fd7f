// Package format turns numeric values into display strings.
package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Number formats v with two decimals and thousands separators: 50000 → "50,000.00".
func Number(v float64) string {
	return group(fixed(v, 2))
}

// Currency formats v as dollars: 50000 → "$50,000.00", -12 → "-$12.00".
func Currency(v float64) string {
	s := Number(v)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// SignedCurrency is Currency with an explicit plus sign on non-negative values.
func SignedCurrency(v float64) string {
	s := Currency(v)
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}

// WholeCurrency formats v as dollars without cents: 10000 → "$10,000".
func WholeCurrency(v float64) string {
	s := group(fixed(v, 0))
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// Percent formats v with the given decimals and an explicit sign: 1.234 → "+1.23%".
func Percent(v float64, decimals int32) string {
	s := fixed(v, decimals)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + "%"
}

var magnitudes = []struct {
	limit  float64
	suffix string
}{
	{1e3, "K"},
	{1e6, "M"},
	{1e9, "B"},
	{1e12, "T"},
}

var thousand = decimal.NewFromInt(1000)

// Compact formats v as a short magnitude for axis labels: 49500 → "49.5K".
// Values below a thousand keep two decimals.
func Compact(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fixed(v, 2)
	}
	i := -1 // unscaled
	for i+1 < len(magnitudes) && math.Abs(v) >= magnitudes[i+1].limit {
		i++
	}
	// rounding may carry into the next magnitude: 999950 → "1M", not "1000K"
	for i+1 < len(magnitudes) && !compactRound(v, i).Abs().LessThan(thousand) {
		i++
	}
	if i < 0 {
		return fixed(v, 2)
	}
	m := magnitudes[i]
	return strings.TrimSuffix(fixed(v/m.limit, 1), ".0") + m.suffix
}

func compactRound(v float64, i int) decimal.Decimal {
	if i < 0 {
		return decimal.NewFromFloat(v).Round(2)
	}
	return decimal.NewFromFloat(v / magnitudes[i].limit).Round(1)
}

// fixed rounds half away from zero and renders exactly n decimals. Negative
// zero renders without a sign.
func fixed(v float64, n int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0" + zeros(n)
	}
	d := decimal.NewFromFloat(v).Round(n)
	if d.IsZero() {
		d = decimal.Zero
	}
	return d.StringFixed(n)
}

func zeros(n int32) string {
	if n <= 0 {
		return ""
	}
	return "." + strings.Repeat("0", int(n))
}

// group inserts thousands separators into the integer part of a decimal string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}
