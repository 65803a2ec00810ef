package catalog

import (
	"strings"
	"unicode"
)

// NormalizeSKU canonicalizes a raw SKU cell for matching. The second
// return is false when the cell carries no SKU at all: empty,
// whitespace-only, or the literal "nan" that a float-typed spreadsheet
// column leaks for absent values.
func NormalizeSKU(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "nan" {
		return "", false
	}
	return s, true
}

// ValidSKU reports whether a normalized SKU satisfies the record
// invariant: non-empty and free of control characters. ERP extracts
// occasionally carry truncated lines whose code cell is a lone 0x1A
// substitute byte; those are corrupted placeholders, not products.
func ValidSKU(sku string) bool {
	if sku == "" {
		return false
	}
	return !strings.ContainsFunc(sku, unicode.IsControl)
}
