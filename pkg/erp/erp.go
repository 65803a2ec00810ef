// Package erp parses and normalizes the authoritative inventory/price
// extract: a semicolon-separated, Latin-1 encoded table whose columns
// carry the product code, name, unit price, and one stock column per
// physical warehouse (us01..us05).
//
// Normalization silently drops corrupted lines (blank or
// control-character product codes) and coerces blank numeric cells to
// zero. A missing required column or an unparseable numeric value is a
// malformed-input failure for the whole run.
package erp

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/jugandoyeducando/marketmaster/internal/csvio"
	"github.com/jugandoyeducando/marketmaster/pkg/catalog"
	"github.com/jugandoyeducando/marketmaster/pkg/errors"
)

// Column names of the ERP extract.
const (
	ColumnSKU   = "Codpro"
	ColumnName  = "Nompro"
	ColumnPrice = "Valuni"
)

// warehousePattern matches the per-warehouse stock columns (us01..us05).
var warehousePattern = regexp.MustCompile(`^us\d{2}$`)

// Parse reads and normalizes an ERP extract. The first row is the
// header; every warehouse column the header carries is captured so one
// parsed extract can serve any platform's warehouse selection.
func Parse(r io.Reader) ([]catalog.Record, error) {
	rows, err := csvio.Read(r, csvio.ReadOptions{Comma: ';', Latin1: true})
	if err != nil {
		return nil, err
	}
	return normalize(rows, "")
}

// ParseFile reads and normalizes an ERP extract from disk.
func ParseFile(path string) ([]catalog.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer f.Close()

	rows, err := csvio.Read(f, csvio.ReadOptions{Comma: ';', Latin1: true})
	if err != nil {
		return nil, errors.NewParseError("csv", path, err.Error(), err)
	}
	return normalize(rows, path)
}

func normalize(rows [][]string, path string) ([]catalog.Record, error) {
	if len(rows) == 0 {
		return nil, errors.NewParseError("csv", path, "ERP extract is empty", nil)
	}

	header := rows[0]
	skuCol, nameCol, priceCol := -1, -1, -1
	warehouseCols := map[string]int{}
	for i, h := range header {
		switch name := strings.TrimSpace(h); {
		case name == ColumnSKU:
			skuCol = i
		case name == ColumnName:
			nameCol = i
		case name == ColumnPrice:
			priceCol = i
		case warehousePattern.MatchString(name):
			warehouseCols[name] = i
		}
	}
	if skuCol < 0 {
		return nil, errors.NewSchemaError("erp", ColumnSKU, "missing from extract header")
	}
	if priceCol < 0 {
		return nil, errors.NewSchemaError("erp", ColumnPrice, "missing from extract header")
	}

	records := make([]catalog.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		sku, ok := catalog.NormalizeSKU(cell(row, skuCol))
		if !ok || !catalog.ValidSKU(sku) {
			// Corrupted or placeholder line, dropped without report.
			continue
		}

		rec := catalog.Record{
			SKU:        sku,
			Name:       strings.TrimSpace(cell(row, nameCol)),
			Warehouses: make(map[string]float64, len(warehouseCols)),
		}

		price, known, err := parseNumber(cell(row, priceCol))
		if err != nil {
			return nil, &errors.ParseError{
				Format: "csv", File: path, Row: i + 2,
				Message: "unparseable " + ColumnPrice + " value " + strconv.Quote(cell(row, priceCol)),
				Err:     err,
			}
		}
		rec.UnitPrice = price
		rec.PriceKnown = known

		for code, col := range warehouseCols {
			qty, known, err := parseNumber(cell(row, col))
			if err != nil {
				return nil, &errors.ParseError{
					Format: "csv", File: path, Row: i + 2,
					Message: "unparseable " + code + " quantity " + strconv.Quote(cell(row, col)),
					Err:     err,
				}
			}
			if known {
				rec.Warehouses[code] = qty
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseNumber coerces a numeric cell. Blank cells read as zero with
// known=false so callers can tell a stated zero from an absent value.
func parseNumber(raw string) (value float64, known bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "nan" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
