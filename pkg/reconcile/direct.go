package reconcile

import (
	"strconv"

	"github.com/jugandoyeducando/marketmaster/pkg/catalog"
)

// resolveDirect applies the direct policy: no grouping, each row is
// overwritten independently from its matched record according to the
// configuration's switches. Quantities are written as whole numbers,
// the way these marketplaces' import validators expect them.
func (e *engine) resolveDirect(table *catalog.Table, records *catalog.RecordSet) Stats {
	stats := Stats{Rows: table.Len()}

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		sku, hasSKU := e.rowSKU(row)

		var rec catalog.Record
		matched := false
		if hasSKU {
			rec, matched = records.First(sku)
			if matched {
				stats.Matched++
			} else {
				stats.Unmatched++
			}
		}

		if e.cfg.SetPrice {
			switch {
			case matched && rec.PriceKnown:
				row.SetCell(e.cfg.PriceCol, formatNumber(rec.UnitPrice))
			case e.cfg.ZeroPriceWhenUnmatched:
				row.SetCell(e.cfg.PriceCol, "0")
			default:
				row.SetCell(e.cfg.PriceCol, "")
			}
		}

		var qty float64
		if matched {
			qty = rec.TotalQuantity(e.cfg.Warehouses)
		}
		if e.cfg.SetQuantity {
			row.SetCell(e.cfg.QuantityCol, strconv.Itoa(int(qty)))
		}
		if e.cfg.SetAvailability {
			if qty > 0 {
				row.SetCell(e.cfg.AvailabilityCol, e.cfg.AvailableLabel)
			} else {
				row.SetCell(e.cfg.AvailabilityCol, e.cfg.UnavailableLabel)
			}
		}
	}

	return stats
}
