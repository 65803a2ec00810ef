// Package platforms defines the per-marketplace adapter configurations.
// Every marketplace runs the same reconciliation engine; an adapter is
// nothing but data: the export's column schema and header offset, which
// ERP warehouse columns feed it, and which resolution policy applies.
// Configurations are selected at construction and never mutated during
// a run.
package platforms

import (
	"fmt"

	"github.com/jugandoyeducando/marketmaster/pkg/errors"
)

// Policy selects how reconciled price/quantity values are resolved.
type Policy string

// Resolution policies.
const (
	// PolicyListing groups rows by listing id and applies the
	// singleton / multi-row variant rules.
	PolicyListing Policy = "listing"

	// PolicyStore maps each row's store id to one warehouse column and
	// recomputes availability from that warehouse's stock.
	PolicyStore Policy = "store"

	// PolicyDirect overwrites configured columns row by row from the
	// matched record, with no grouping.
	PolicyDirect Policy = "direct"
)

// Format is the marketplace export file format.
type Format string

// Export formats.
const (
	FormatExcel Format = "xlsx"
	FormatCSV   Format = "csv"
)

// Config describes one marketplace deployment. Column positions are
// zero-based indexes into Columns; -1 marks a role the platform's
// schema does not carry.
type Config struct {
	ID   string
	Name string

	// Input layout.
	Format         Format
	Sheet          string // Excel worksheet name, "" for the first sheet
	HeaderSkipRows int    // template header rows before data
	Delimiter      rune   // CSV field separator, ',' when zero

	// Columns is the fixed ordered schema of the export. Output is
	// re-projected onto exactly these columns.
	Columns []string

	Policy Policy

	// Column roles.
	SKUCol          int
	ListingCol      int
	VariantCol      int
	PriceCol        int
	QuantityCol     int
	StoreCol        int
	AvailabilityCol int

	// IntCols are numeric identifier columns rendered as plain integer
	// strings on output (a float-typed source cell must not leak ".0").
	IntCols []int

	// SKUPrefix is stripped from export SKUs before matching and
	// re-applied on output.
	SKUPrefix string

	// Warehouses are the ERP stock columns summed into this
	// deployment's quantity (listing and direct policies).
	Warehouses []string

	// StoreWarehouses maps a store id to its single warehouse column
	// (store policy).
	StoreWarehouses map[string]string

	// Availability labels written by availability recomputation.
	AvailableLabel   string
	UnavailableLabel string

	// Direct-policy switches: which columns the matched record
	// overwrites.
	SetPrice        bool
	SetQuantity     bool
	SetAvailability bool

	// ZeroPriceWhenUnmatched writes 0 instead of blank for unmatched
	// rows under the direct policy.
	ZeroPriceWhenUnmatched bool

	// Output packaging.
	ChunkSize int  // rows per output file, 0 = single file
	OutputBOM bool // UTF-8 byte order mark on CSV output
}

// WriteStartRow is the 1-based worksheet row where reconciled data is
// written back. It must match the header block skipped at parse time or
// the template's columns misalign.
func (c Config) WriteStartRow() int {
	return c.HeaderSkipRows + 1
}

// NumericColumns returns the column indexes whose cells hold numbers
// on output: the price and quantity roles plus IntCols. All other
// columns pass through as text, zero padding and all.
func (c Config) NumericColumns() map[int]bool {
	cols := make(map[int]bool, len(c.IntCols)+2)
	if c.PriceCol >= 0 {
		cols[c.PriceCol] = true
	}
	if c.QuantityCol >= 0 {
		cols[c.QuantityCol] = true
	}
	for _, i := range c.IntCols {
		cols[i] = true
	}
	return cols
}

// Validate checks internal consistency of the configuration.
func (c Config) Validate() error {
	if c.ID == "" {
		return errors.NewConfigError("platform", "missing id", nil)
	}
	if len(c.Columns) == 0 {
		return errors.NewConfigError(c.ID, "empty column schema", nil)
	}
	if c.SKUCol < 0 || c.SKUCol >= len(c.Columns) {
		return errors.NewConfigError(c.ID, "sku column outside schema", nil)
	}
	for _, i := range c.IntCols {
		if i < 0 || i >= len(c.Columns) {
			return errors.NewConfigError(c.ID, fmt.Sprintf("integer column %d outside schema", i), nil)
		}
	}
	switch c.Policy {
	case PolicyListing:
		if c.ListingCol < 0 || c.PriceCol < 0 || c.QuantityCol < 0 {
			return errors.NewConfigError(c.ID, "listing policy needs listing, price and quantity columns", nil)
		}
		if len(c.Warehouses) == 0 {
			return errors.NewConfigError(c.ID, "listing policy needs at least one warehouse column", nil)
		}
	case PolicyStore:
		if c.StoreCol < 0 || c.PriceCol < 0 || c.AvailabilityCol < 0 {
			return errors.NewConfigError(c.ID, "store policy needs store, price and availability columns", nil)
		}
		if len(c.StoreWarehouses) == 0 {
			return errors.NewConfigError(c.ID, "store policy needs a store to warehouse mapping", nil)
		}
		if c.AvailableLabel == "" || c.UnavailableLabel == "" {
			return errors.NewConfigError(c.ID, "store policy needs availability labels", nil)
		}
	case PolicyDirect:
		if !c.SetPrice && !c.SetQuantity {
			return errors.NewConfigError(c.ID, "direct policy overwrites nothing", nil)
		}
		if c.SetPrice && c.PriceCol < 0 {
			return errors.NewConfigError(c.ID, "price overwrite without a price column", nil)
		}
		if c.SetQuantity && (c.QuantityCol < 0 || len(c.Warehouses) == 0) {
			return errors.NewConfigError(c.ID, "quantity overwrite needs a quantity column and warehouses", nil)
		}
		if c.SetAvailability && c.AvailabilityCol < 0 {
			return errors.NewConfigError(c.ID, "availability overwrite without an availability column", nil)
		}
	default:
		return errors.NewConfigError(c.ID, fmt.Sprintf("unknown policy %q", c.Policy), nil)
	}
	return nil
}
