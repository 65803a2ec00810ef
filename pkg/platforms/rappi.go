package platforms

// Rappi exports list one row per product per store, so stock is looked
// up at the single warehouse backing that store rather than a city
// total. Export SKUs carry the seller prefix, which is stripped for
// matching and restored on output. Availability is recomputed from the
// looked-up stock, never copied from the uploaded file.

const rappiSKUPrefix = "jugandoyeducandoco_"

func rappiConfig(id, name string, stores map[string]string) Config {
	return Config{
		ID:             id,
		Name:           name,
		Format:         FormatExcel,
		Sheet:          "Productos",
		HeaderSkipRows: 5,
		Columns: []string{
			"vacia_borrar",
			"ID",
			"ID de tienda",
			"Nombre de tienda",
			"ID del producto",
			"EAN",
			"SKU",
			"Nombre del producto",
			"Descripción",
			"Presentación",
			"Precio",
			"Descuento",
			"Disponibilidad",
		},
		Policy:           PolicyStore,
		StoreCol:         2,
		SKUCol:           6,
		PriceCol:         10,
		AvailabilityCol:  12,
		ListingCol:       -1,
		VariantCol:       -1,
		QuantityCol:      -1,
		SKUPrefix:        rappiSKUPrefix,
		StoreWarehouses:  stores,
		AvailableLabel:   "SI",
		UnavailableLabel: "NO",
	}
}

// RappiBogota reconciles the Rappi export for the Av. 19, Bulevar and
// Calle 74 stores.
func RappiBogota() Config {
	return rappiConfig("rappi-bogota", "Rappi - Av.19, Blv y Cll 74", map[string]string{
		"900243006": "us01",
		"900243075": "us02",
		"900246112": "us03",
	})
}

// RappiMedellin reconciles the Rappi export for the Buenavista and
// Oviedo stores.
func RappiMedellin() Config {
	return rappiConfig("rappi-medellin", "Rappi - Bvista y Oviedo", map[string]string{
		"900243002": "us04",
		"900418701": "us05",
	})
}
