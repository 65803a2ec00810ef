package reconcile

import "github.com/jugandoyeducando/marketmaster/pkg/catalog"

// match is the join result for one marketplace row.
type match struct {
	row     *catalog.Row
	sku     string
	hasSKU  bool
	matched bool
	record  catalog.Record
}

// join left-joins a row against the record set. Duplicate SKUs in the
// ERP extract resolve to the record with the highest known unit price,
// consistent with the listing resolver's max-price rule; rows with no
// SKU or no matching record come back unmatched, never as an error.
func (e *engine) join(row *catalog.Row, records *catalog.RecordSet) match {
	m := match{row: row}
	m.sku, m.hasSKU = e.rowSKU(row)
	if !m.hasSKU {
		return m
	}

	candidates := records.Lookup(m.sku)
	if len(candidates) == 0 {
		return m
	}

	m.matched = true
	m.record = bestRecord(candidates)
	return m
}

// bestRecord picks among duplicate records for one SKU: the highest
// known unit price wins, extract order breaks ties.
func bestRecord(candidates []catalog.Record) catalog.Record {
	best := candidates[0]
	for _, r := range candidates[1:] {
		if r.PriceKnown && (!best.PriceKnown || r.UnitPrice > best.UnitPrice) {
			best = r
		}
	}
	return best
}

// quantity is the row's reconciled stock under the platform's summed
// warehouse selection, zero when unmatched.
func (m match) quantity(warehouses []string) float64 {
	if !m.matched {
		return 0
	}
	return m.record.TotalQuantity(warehouses)
}

// priced reports whether the matched record carries a usable price.
func (m match) priced() bool {
	return m.matched && m.record.PriceKnown
}
