package reconcile

import (
	"strings"

	"github.com/jugandoyeducando/marketmaster/pkg/catalog"
)

// resolveListings applies the listing policy: rows are grouped by
// listing id and each group takes exactly one of two branches.
//
// Singleton group: the row's quantity becomes the matched record's
// summed stock (zero when unmatched) and its price the matched unit
// price. Multi-row group (a listing with variants): every SKU-bearing
// row takes its own matched stock, and the bare header rows take the
// maximum unit price among the group's matched rows.
//
// Any price still unresolved after both branches keeps the original
// listed price. The two stages must run in this order: the group-level
// maximum first, the original-price fallback last.
//
// Rows are edited in place, so grouping can never leak into output
// order.
func (e *engine) resolveListings(table *catalog.Table, records *catalog.RecordSet) Stats {
	stats := Stats{Rows: table.Len()}

	// Explicit group-by: listing key to member row positions, keys in
	// first-seen order.
	members := make(map[string][]match)
	var order []string
	for i := 0; i < table.Len(); i++ {
		m := e.join(table.Row(i), records)
		if m.matched {
			stats.Matched++
		} else if m.hasSKU {
			stats.Unmatched++
		}

		key := strings.TrimSpace(m.row.Cell(e.cfg.ListingCol))
		if _, seen := members[key]; !seen {
			order = append(order, key)
		}
		members[key] = append(members[key], m)
	}
	stats.Groups = len(order)

	for _, key := range order {
		group := members[key]
		if len(group) == 1 {
			e.resolveSingleton(group[0])
		} else {
			e.resolveVariants(group)
		}
	}

	return stats
}

// resolveSingleton handles a one-row listing. The price cell is only
// overwritten when the match carries a known price; otherwise the
// original listed price stands, which is the final fallback stage.
func (e *engine) resolveSingleton(m match) {
	m.row.SetCell(e.cfg.QuantityCol, formatQuantity(m.quantity(e.cfg.Warehouses)))
	if m.priced() {
		m.row.SetCell(e.cfg.PriceCol, formatNumber(m.record.UnitPrice))
	}
}

// resolveVariants handles a multi-row listing. SKU-bearing variant rows
// get their own stock; the listing's bare header rows get the ceiling
// price over the matched variants, computed once per group. Header rows
// of a group with no matched variants keep their original price.
func (e *engine) resolveVariants(group []match) {
	maxPrice := 0.0
	havePrice := false
	for _, m := range group {
		if !m.hasSKU {
			continue
		}
		m.row.SetCell(e.cfg.QuantityCol, formatQuantity(m.quantity(e.cfg.Warehouses)))
		if m.priced() && (!havePrice || m.record.UnitPrice > maxPrice) {
			maxPrice = m.record.UnitPrice
			havePrice = true
		}
	}

	if !havePrice {
		return
	}
	for _, m := range group {
		if !m.hasSKU {
			m.row.SetCell(e.cfg.PriceCol, formatNumber(maxPrice))
		}
	}
}
