package erp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jugandoyeducando/marketmaster/pkg/errors"
)

const sampleExtract = "Codpro;Nompro;Valuni;us01;us02;us05\n" +
	"100;Muneca;50;3;2;7\n" +
	";Sin codigo;10;1;1;1\n" +
	"   ;Blanco;10;1;1;1\n" +
	"\x1a;Corrupta;10;1;1;1\n" +
	"nan;Flotante;10;1;1;1\n" +
	"200;Sin precio;;4;;0\n"

func TestParseFiltersCorruptedRows(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleExtract))
	require.NoError(t, err)

	// Blank, whitespace, substitute-byte and "nan" codes are dropped
	// silently; only the two real products survive.
	require.Len(t, records, 2)
	assert.Equal(t, "100", records[0].SKU)
	assert.Equal(t, "200", records[1].SKU)
}

func TestParseCoercesNumbers(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleExtract))
	require.NoError(t, err)

	first := records[0]
	assert.Equal(t, 50.0, first.UnitPrice)
	assert.True(t, first.PriceKnown)
	assert.Equal(t, 3.0, first.Warehouses["us01"])
	assert.Equal(t, 2.0, first.Warehouses["us02"])
	assert.Equal(t, 7.0, first.Warehouses["us05"])

	second := records[1]
	assert.False(t, second.PriceKnown, "blank price is absent, not zero")
	assert.Equal(t, 0.0, second.UnitPrice)
	assert.Equal(t, 4.0, second.Warehouses["us01"])
	assert.Equal(t, 0.0, second.Warehouses["us02"], "blank quantity coerces to zero")
}

func TestParseLatin1(t *testing.T) {
	// "Muñeca" with ñ encoded as the single Latin-1 byte 0xF1.
	extract := "Codpro;Nompro;Valuni;us01\n100;Mu\xf1eca;50;3\n"

	records, err := Parse(strings.NewReader(extract))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Muñeca", records[0].Name)
}

func TestParseMissingRequiredColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("Nompro;Valuni;us01\nProducto;50;3\n"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "Codpro")

	_, err = Parse(strings.NewReader("Codpro;Nompro;us01\n100;Producto;3\n"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "Valuni")
}

func TestParseUnparseableNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("Codpro;Valuni;us01\n100;precio;3\n"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))

	_, err = Parse(strings.NewReader("Codpro;Valuni;us01\n100;50;mucho\n"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestParseEmptyExtract(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestParseDuplicateSKUsKept(t *testing.T) {
	extract := "Codpro;Valuni;us01\n100;10;1\n100;20;2\n"

	records, err := Parse(strings.NewReader(extract))
	require.NoError(t, err)
	assert.Len(t, records, 2, "duplicate codes are allowed in the extract")
}
