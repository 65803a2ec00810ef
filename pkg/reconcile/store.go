package reconcile

import "github.com/jugandoyeducando/marketmaster/pkg/catalog"

// resolveStores applies the store policy: each row's store id selects
// one warehouse column, and availability is a pure function of the
// stock found there. The file's own stated availability is never
// consulted. An unmapped store or an absent SKU reads as zero stock,
// not as an error.
//
// Price is the matched record's unit price; unmatched rows are left
// with a blank price. Unlike the listing policy there is no
// original-price fallback here.
func (e *engine) resolveStores(table *catalog.Table, records *catalog.RecordSet) Stats {
	stats := Stats{Rows: table.Len()}

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		sku, hasSKU := e.rowSKU(row)

		var qty float64
		if hasSKU {
			// Store ids come out of spreadsheet cells; a float-typed
			// column reads "900243006.0" for the same store.
			store := integerString(row.Cell(e.cfg.StoreCol))
			if warehouse, mapped := e.cfg.StoreWarehouses[store]; mapped {
				qty = records.WarehouseQuantity(sku, warehouse)
			}
		}

		if qty > 0 {
			row.SetCell(e.cfg.AvailabilityCol, e.cfg.AvailableLabel)
		} else {
			row.SetCell(e.cfg.AvailabilityCol, e.cfg.UnavailableLabel)
		}

		price := ""
		if hasSKU {
			// Store flows take the first record for a duplicated SKU.
			if rec, ok := records.First(sku); ok {
				stats.Matched++
				if rec.PriceKnown {
					price = formatNumber(rec.UnitPrice)
				}
			} else {
				stats.Unmatched++
			}
			if e.cfg.SKUPrefix != "" {
				row.SetCell(e.cfg.SKUCol, e.cfg.SKUPrefix+sku)
			}
		}
		row.SetCell(e.cfg.PriceCol, price)
	}

	return stats
}
