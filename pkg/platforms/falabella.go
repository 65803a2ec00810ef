package platforms

// Falabella splits one logical update into two artifacts with separate
// templates: a price workbook and an inventory CSV. Each runs as its
// own adapter under the direct policy. Unmatched rows keep a blank
// price in the workbook but a zero quantity in the CSV, matching the
// marketplace's own import rules.

// FalabellaPrice reconciles the Falabella price workbook.
func FalabellaPrice() Config {
	return Config{
		ID:             "falabella-price",
		Name:           "Falabella - Precios",
		Format:         FormatExcel,
		Sheet:          "",
		HeaderSkipRows: 1,
		Columns: []string{
			"SellerSku",
			"ShopSku",
			"PriceFalabella",
			"SalePriceFalabella",
			"SaleStartDateFalabella",
			"SaleEndDateFalabella",
			"Name",
		},
		Policy:          PolicyDirect,
		SKUCol:          0,
		PriceCol:        2,
		ListingCol:      -1,
		VariantCol:      -1,
		QuantityCol:     -1,
		StoreCol:        -1,
		AvailabilityCol: -1,
		IntCols:         []int{1},
		Warehouses:      []string{"us01", "us02"},
		SetPrice:        true,
	}
}

// FalabellaInventory reconciles the Falabella inventory CSV.
func FalabellaInventory() Config {
	return Config{
		ID:             "falabella-inventory",
		Name:           "Falabella - Inventario",
		Format:         FormatCSV,
		Delimiter:      ';',
		HeaderSkipRows: 1,
		Columns: []string{
			"SellerSku",
			"ShopSku",
			"QuantityFalabella",
			"Name",
		},
		Policy:          PolicyDirect,
		SKUCol:          0,
		QuantityCol:     2,
		ListingCol:      -1,
		VariantCol:      -1,
		PriceCol:        -1,
		StoreCol:        -1,
		AvailabilityCol: -1,
		IntCols:         []int{1},
		Warehouses:      []string{"us01", "us02"},
		SetQuantity:     true,
		OutputBOM:       true,
	}
}
