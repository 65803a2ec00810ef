package reconcile

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders a numeric value the shortest exact way: whole
// numbers without a decimal point, fractions without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatQuantity renders a stock quantity. ERP stock is whole units in
// practice; whole values render as integers, anything else exactly.
func formatQuantity(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatInt(int64(v), 10)
	}
	return formatNumber(v)
}

// integerString normalizes a numeric identifier cell to a plain integer
// string: "7.0" becomes "7", blank and "nan" become blank, and values
// that are not numeric at all pass through untouched.
func integerString(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == "nan" {
		return ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return raw
	}
	if v != math.Trunc(v) {
		return raw
	}
	return strconv.FormatInt(int64(v), 10)
}
