package platforms

// The two Mercado Libre deployments share the listing policy but ship
// different export templates: Medellín's "Publicaciones" sheet carries
// nine columns after five header rows and draws stock from us05, while
// Bogotá's carries eleven columns after six header rows and sums the
// two Bogotá warehouses into one city-level total.

// MeliMedellin reconciles the Mercado Libre Medellín export.
func MeliMedellin() Config {
	return Config{
		ID:             "meli-medellin",
		Name:           "Mercado Libre - Medellín",
		Format:         FormatExcel,
		Sheet:          "Publicaciones",
		HeaderSkipRows: 5,
		Columns: []string{
			"Número de publicación",
			"Número de producto",
			"Número de variante",
			"SKU",
			"Título",
			"Variantes",
			"Cantidad",
			"Precio",
			"Moneda",
		},
		Policy:          PolicyListing,
		ListingCol:      0,
		VariantCol:      2,
		SKUCol:          3,
		QuantityCol:     6,
		PriceCol:        7,
		StoreCol:        -1,
		AvailabilityCol: -1,
		IntCols:         []int{2},
		Warehouses:      []string{"us05"},
	}
}

// MeliBogota reconciles the Mercado Libre Bogotá export.
func MeliBogota() Config {
	return Config{
		ID:             "meli-bogota",
		Name:           "Mercado Libre - Bogotá",
		Format:         FormatExcel,
		Sheet:          "Publicaciones",
		HeaderSkipRows: 6,
		Columns: []string{
			"Número de publicación",
			"Número de variante",
			"SKU",
			"Título",
			"Variantes",
			"Cantidad (Obligatorio)",
			"Canal de venta",
			"Precio",
			"Mercado Shops",
			"Vincular precio con Mercado Libre",
			"Moneda",
		},
		Policy:          PolicyListing,
		ListingCol:      0,
		VariantCol:      1,
		SKUCol:          2,
		QuantityCol:     5,
		PriceCol:        7,
		StoreCol:        -1,
		AvailabilityCol: -1,
		IntCols:         []int{1},
		Warehouses:      []string{"us01", "us02"},
	}
}
