package extenso

import (
	"math"
	"strconv"
	"strings"
)

// Decimal formats v with two decimals and a comma separator, the way
// monetary columns are printed (1500 -> "1500,00"). No thousands grouping
// is applied.
func Decimal(v float64) string {
	return strings.Replace(strconv.FormatFloat(round2(v), 'f', 2, 64), ".", ",", 1)
}

// ParseDecimal reads a user-typed number accepting either separator.
// It mirrors the lenient "parse or zero" behaviour of numeric form inputs:
// ok is false for empty or malformed input and the value is then 0.
func ParseDecimal(s string) (float64, bool) {
	n := normalize(s)
	if n == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(n, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Number formats a quantity compactly: integral values carry no decimals
// and fractional ones use a comma (2 -> "2", 1.5 -> "1,5").
func Number(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
