// Package catalog defines the data model shared by the reconciliation
// pipeline: ERP product records with per-warehouse stock, and ordered
// tabular marketplace data whose original row positions survive every
// processing stage.
package catalog

// Record is one normalized product line from the ERP extract.
// SKU is guaranteed by the normalizer to be non-empty, non-whitespace,
// and free of control characters. Duplicate SKUs are allowed.
type Record struct {
	SKU       string
	Name      string
	UnitPrice float64

	// PriceKnown is false when the extract's price cell was blank.
	// A blank authoritative price never overwrites a listed price; the
	// resolver's fallback rules apply instead.
	PriceKnown bool

	// Warehouses maps a warehouse code (us01..us05) to the stock
	// quantity held at that location. Codes absent from the extract
	// are simply absent from the map and read as zero.
	Warehouses map[string]float64
}

// Quantity returns the stock held at a single warehouse, zero when the
// extract carries no column for that code.
func (r Record) Quantity(warehouse string) float64 {
	return r.Warehouses[warehouse]
}

// TotalQuantity sums the stock across the given warehouse codes.
// Missing codes contribute zero; the sum is taken elementwise, a row is
// never skipped because one of its warehouse cells was blank.
func (r Record) TotalQuantity(warehouses []string) float64 {
	var total float64
	for _, w := range warehouses {
		total += r.Warehouses[w]
	}
	return total
}

// RecordSet indexes a normalized ERP extract for O(1) lookups by SKU.
// It is built once per reconciliation run and is read-only afterwards.
type RecordSet struct {
	records []Record
	bySKU   map[string][]int
}

// NewRecordSet builds the per-run SKU index over normalized records.
func NewRecordSet(records []Record) *RecordSet {
	s := &RecordSet{
		records: records,
		bySKU:   make(map[string][]int, len(records)),
	}
	for i, r := range records {
		s.bySKU[r.SKU] = append(s.bySKU[r.SKU], i)
	}
	return s
}

// Len returns the number of indexed records.
func (s *RecordSet) Len() int {
	return len(s.records)
}

// Lookup returns every record matching the SKU, in extract order.
// A nil slice means no match.
func (s *RecordSet) Lookup(sku string) []Record {
	idx := s.bySKU[sku]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Record, len(idx))
	for i, j := range idx {
		out[i] = s.records[j]
	}
	return out
}

// First returns the first record matching the SKU, extract order.
func (s *RecordSet) First(sku string) (Record, bool) {
	idx := s.bySKU[sku]
	if len(idx) == 0 {
		return Record{}, false
	}
	return s.records[idx[0]], true
}

// WarehouseQuantity returns the stock of the first record matching the
// SKU at one specific warehouse. Absence of a match or of the warehouse
// value reads as zero.
func (s *RecordSet) WarehouseQuantity(sku, warehouse string) float64 {
	r, ok := s.First(sku)
	if !ok {
		return 0
	}
	return r.Quantity(warehouse)
}
