package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jugandoyeducando/marketmaster/pkg/catalog"
	"github.com/jugandoyeducando/marketmaster/pkg/logging"
	"github.com/jugandoyeducando/marketmaster/pkg/platforms"
)

// meliRow builds a Mercado Libre Bogotá row: listing id, variant id,
// SKU, quantity and price in that template's column positions.
func meliRow(listing, variant, sku, qty, price string) []string {
	return []string{listing, variant, sku, "Título", "Variantes", qty, "Canal", price, "No", "Sí", "COP"}
}

func reconcileBogota(t *testing.T, cells [][]string, records []catalog.Record) *catalog.Table {
	t.Helper()

	engine, err := New(platforms.MeliBogota(), WithLogger(logging.Nop))
	require.NoError(t, err)

	table := catalog.NewTable(cells)
	_, err = engine.Reconcile(context.Background(), table, catalog.NewRecordSet(records))
	require.NoError(t, err)
	return table
}

func TestListingEndToEnd(t *testing.T) {
	// One ERP product in both Bogotá warehouses; a listing with one
	// variant row and one bare header row.
	records := []catalog.Record{
		{SKU: "100", UnitPrice: 50, PriceKnown: true, Warehouses: map[string]float64{"us01": 3, "us02": 2}},
	}
	table := reconcileBogota(t, [][]string{
		meliRow("L1", "7.0", "100", "9", "45"),
		meliRow("L1", "", "", "9", "45"),
	}, records)

	variant := table.Row(0)
	assert.Equal(t, "5", variant.Cell(5), "variant quantity is the summed city stock")
	assert.Equal(t, "45", variant.Cell(7), "variant keeps its listed price")
	assert.Equal(t, "7", variant.Cell(1), "variant id loses the float suffix")

	header := table.Row(1)
	assert.Equal(t, "50", header.Cell(7), "header takes the listing's matched ceiling price")
	assert.Equal(t, "", header.Cell(1))

	assert.Equal(t, "L1", variant.Cell(0))
	assert.Equal(t, "L1", header.Cell(0))
}

func TestSingletonMatched(t *testing.T) {
	records := []catalog.Record{
		{SKU: "100", UnitPrice: 80, PriceKnown: true, Warehouses: map[string]float64{"us01": 4}},
	}
	table := reconcileBogota(t, [][]string{
		meliRow("L1", "", "100", "1", "99"),
	}, records)

	row := table.Row(0)
	assert.Equal(t, "4", row.Cell(5))
	assert.Equal(t, "80", row.Cell(7), "authoritative price replaces the listed price")
}

func TestSingletonUnmatched(t *testing.T) {
	table := reconcileBogota(t, [][]string{
		meliRow("L1", "", "999", "6", "99"),
	}, nil)

	row := table.Row(0)
	assert.Equal(t, "0", row.Cell(5), "unmatched quantity is zero")
	assert.Equal(t, "99", row.Cell(7), "unmatched price falls back to the listed price")
}

func TestSingletonMatchedWithoutPrice(t *testing.T) {
	records := []catalog.Record{
		{SKU: "100", Warehouses: map[string]float64{"us01": 4}},
	}
	table := reconcileBogota(t, [][]string{
		meliRow("L1", "", "100", "1", "99"),
	}, records)

	row := table.Row(0)
	assert.Equal(t, "4", row.Cell(5))
	assert.Equal(t, "99", row.Cell(7), "a blank extract price never overwrites the listed price")
}

func TestMultiRowMaxPrice(t *testing.T) {
	records := []catalog.Record{
		{SKU: "A", UnitPrice: 30, PriceKnown: true, Warehouses: map[string]float64{"us01": 1}},
		{SKU: "B", UnitPrice: 70, PriceKnown: true, Warehouses: map[string]float64{"us01": 2}},
	}
	table := reconcileBogota(t, [][]string{
		meliRow("L1", "", "", "0", "10"),
		meliRow("L1", "1", "A", "5", "25"),
		meliRow("L1", "2", "B", "5", "65"),
	}, records)

	assert.Equal(t, "70", table.Row(0).Cell(7), "header price is the maximum over matched variants")
	assert.Equal(t, "1", table.Row(1).Cell(5))
	assert.Equal(t, "2", table.Row(2).Cell(5))
	assert.Equal(t, "25", table.Row(1).Cell(7), "variant rows keep their own listed price")
}

func TestMultiRowNoMatchesFallsBackToOriginal(t *testing.T) {
	table := reconcileBogota(t, [][]string{
		meliRow("L1", "", "", "0", "10"),
		meliRow("L1", "1", "X", "5", "25"),
	}, nil)

	assert.Equal(t, "10", table.Row(0).Cell(7), "no matched variants leaves the header's listed price")
	assert.Equal(t, "0", table.Row(1).Cell(5), "unmatched variant stock is zero")
	assert.Equal(t, "25", table.Row(1).Cell(7))
}

func TestDuplicateSKUResolvesToMaxPrice(t *testing.T) {
	records := []catalog.Record{
		{SKU: "100", UnitPrice: 10, PriceKnown: true, Warehouses: map[string]float64{"us01": 1}},
		{SKU: "100", UnitPrice: 20, PriceKnown: true, Warehouses: map[string]float64{"us01": 8}},
	}
	table := reconcileBogota(t, [][]string{
		meliRow("L1", "", "100", "1", "99"),
	}, records)

	row := table.Row(0)
	assert.Equal(t, "20", row.Cell(7), "duplicated SKU resolves to the max-price record")
	assert.Equal(t, "8", row.Cell(5), "quantity follows the chosen record")
}

func TestOutputOrderEqualsInputOrder(t *testing.T) {
	// Interleaved listings force grouping across non-adjacent rows.
	cells := [][]string{
		meliRow("L1", "1", "A", "1", "10"),
		meliRow("L2", "1", "B", "1", "10"),
		meliRow("L1", "2", "C", "1", "10"),
		meliRow("L2", "", "", "1", "10"),
		meliRow("L3", "", "D", "1", "10"),
	}
	table := reconcileBogota(t, cells, nil)

	require.Equal(t, len(cells), table.Len())
	for i := 0; i < table.Len(); i++ {
		assert.Equal(t, i, table.Row(i).Index, "output position %d", i)
	}
}

func TestListingStats(t *testing.T) {
	records := []catalog.Record{
		{SKU: "A", UnitPrice: 1, PriceKnown: true, Warehouses: map[string]float64{"us01": 1}},
	}
	engine, err := New(platforms.MeliBogota(), WithLogger(logging.Nop))
	require.NoError(t, err)

	table := catalog.NewTable([][]string{
		meliRow("L1", "1", "A", "1", "10"),
		meliRow("L1", "", "", "1", "10"),
		meliRow("L2", "1", "X", "1", "10"),
	})
	result, err := engine.Reconcile(context.Background(), table, catalog.NewRecordSet(records))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.Rows)
	assert.Equal(t, 2, result.Stats.Groups)
	assert.Equal(t, 1, result.Stats.Matched)
	assert.Equal(t, 1, result.Stats.Unmatched)
	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.StartedAt.IsZero())
	assert.False(t, result.CompletedAt.Before(result.StartedAt), "completion never precedes the start")
}

func TestProjectionToSchemaWidth(t *testing.T) {
	short := meliRow("L1", "", "100", "1", "10")[:8] // input row shorter than schema
	table := reconcileBogota(t, [][]string{short}, nil)

	assert.Len(t, table.Row(0).Cells, len(platforms.MeliBogota().Columns))
}
