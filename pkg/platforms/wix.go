package platforms

// Wix takes the whole store catalog as one CSV. Both price and
// inventory are overwritten from the ERP (zero when unmatched) and the
// visible flag is recomputed from the reconciled stock. Wix rejects
// imports over 4000 rows, so the output is chunked into independent
// files, each with its own header.

// Wix reconciles the Wix catalog CSV export.
func Wix() Config {
	return Config{
		ID:             "wix",
		Name:           "Wix",
		Format:         FormatCSV,
		HeaderSkipRows: 1,
		Columns: []string{
			"handleId", "fieldType", "name", "description", "productImageUrl",
			"collection", "sku", "ribbon", "price", "surcharge", "visible",
			"discountMode", "discountValue", "inventory", "weight", "cost",
			"productOptionName1", "productOptionType1", "productOptionDescription1",
			"productOptionName2", "productOptionType2", "productOptionDescription2",
			"productOptionName3", "productOptionType3", "productOptionDescription3",
			"productOptionName4", "productOptionType4", "productOptionDescription4",
			"productOptionName5", "productOptionType5", "productOptionDescription5",
			"productOptionName6", "productOptionType6", "productOptionDescription6",
			"additionalInfoTitle1", "additionalInfoDescription1",
			"additionalInfoTitle2", "additionalInfoDescription2",
			"additionalInfoTitle3", "additionalInfoDescription3",
			"additionalInfoTitle4", "additionalInfoDescription4",
			"additionalInfoTitle5", "additionalInfoDescription5",
			"additionalInfoTitle6", "additionalInfoDescription6",
			"customTextField1", "customTextCharLimit1", "customTextMandatory1",
			"customTextField2", "customTextCharLimit2", "customTextMandatory2",
			"brand",
		},
		Policy:                 PolicyDirect,
		SKUCol:                 6,
		PriceCol:               8,
		AvailabilityCol:        10, // visible
		QuantityCol:            13, // inventory
		ListingCol:             -1,
		VariantCol:             -1,
		StoreCol:               -1,
		Warehouses:             []string{"us01", "us02"},
		AvailableLabel:         "TRUE",
		UnavailableLabel:       "FALSE",
		SetPrice:               true,
		SetQuantity:            true,
		SetAvailability:        true,
		ZeroPriceWhenUnmatched: true,
		ChunkSize:              4000,
		OutputBOM:              true,
	}
}
