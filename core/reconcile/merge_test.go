package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerSale(name, qty string) RegisterSaleRecord {
	return RegisterSaleRecord{
		ItemDescription: name,
		Department:      "Hardware",
		Category:        "Tools",
		QuantitySold:    d(qty),
		QuantityOnHand:  d("7"),
		Supplier:        "Acme",
	}
}

func TestMergeChannels_BothChannels(t *testing.T) {
	engine := NewEngine(DefaultOptions(), nil)
	idx := NewStockIndex(sampleStock())

	totals, err := engine.MergeChannels(
		[]RegisterSaleRecord{registerSale("Widget", "5")},
		[]OrderLineRecord{orderLine("1", "A1", "Widget", "3", "30.00")},
		idx,
	)
	require.NoError(t, err)
	require.Len(t, totals, 1)

	entry := totals[0]
	assert.Equal(t, "Widget", entry.Name)
	assertAmount(t, "5.00", entry.RegisterQuantitySold)
	assertAmount(t, "3.00", entry.EcommerceQuantitySold)
	assertAmount(t, "8.00", entry.TotalQuantitySold)
	assert.Equal(t, "Hardware", entry.Department)
	assertAmount(t, "7.00", entry.QuantityOnHand.Decimal)
}

func TestMergeChannels_FirstSeenOrder(t *testing.T) {
	engine := NewEngine(DefaultOptions(), nil)
	idx := NewStockIndex(sampleStock())

	totals, err := engine.MergeChannels(
		[]RegisterSaleRecord{registerSale("Loose Tea", "1"), registerSale("Widget", "2"), registerSale(" Loose Tea ", "4")},
		[]OrderLineRecord{
			orderLine("1", "B2", "Gadget", "1", "25"),
			orderLine("1", "A1", "Widget", "1", "10"),
			orderLine("2", "B2", "Gadget", "2", "50"),
		},
		idx,
	)
	require.NoError(t, err)
	require.Len(t, totals, 3)

	assert.Equal(t, "Loose Tea", totals[0].Name)
	assertAmount(t, "5.00", totals[0].RegisterQuantitySold)
	assertAmount(t, "0.00", totals[0].EcommerceQuantitySold)

	assert.Equal(t, "Widget", totals[1].Name)
	assertAmount(t, "3.00", totals[1].TotalQuantitySold)

	assert.Equal(t, "Gadget", totals[2].Name)
	assertAmount(t, "0.00", totals[2].RegisterQuantitySold)
	assertAmount(t, "3.00", totals[2].EcommerceQuantitySold)
	assert.Equal(t, "Electronics", totals[2].Department)
	assert.Equal(t, "Globex", totals[2].Supplier)
	assertAmount(t, "3.00", totals[2].QuantityOnHand.Decimal)
}

func TestMergeChannels_UnresolvedOrderItem(t *testing.T) {
	engine := NewEngine(DefaultOptions(), nil)

	totals, err := engine.MergeChannels(nil,
		[]OrderLineRecord{orderLine("1", "NOPE", "Mystery", "2", "9.99")},
		NewStockIndex(sampleStock()),
	)
	require.NoError(t, err)
	require.Len(t, totals, 1)

	entry := totals[0]
	assert.Equal(t, NotAvailable, entry.Department)
	assert.Equal(t, NotAvailable, entry.Category)
	assert.Equal(t, NotAvailable, entry.Supplier)
	assert.False(t, entry.QuantityOnHand.Valid)
	assertAmount(t, "2.00", entry.TotalQuantitySold)
}

func TestMergeChannels_Strict(t *testing.T) {
	opts := DefaultOptions()
	opts.LookupMode = LookupStrict

	_, err := NewEngine(opts, nil).MergeChannels(nil,
		[]OrderLineRecord{orderLine("1", "NOPE", "Mystery", "2", "9.99")},
		NewStockIndex(sampleStock()),
	)

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "Mystery", lookupErr.Name)
}

func TestMergeChannels_TotalIsSumOfChannels(t *testing.T) {
	engine := NewEngine(DefaultOptions(), nil)
	sales := []RegisterSaleRecord{
		registerSale("Widget", "1.5"), registerSale("Gadget", "2"), registerSale("Widget", "4"), registerSale("Nail", "100"),
	}
	lines := []OrderLineRecord{
		orderLine("1", "A1", "Widget", "3", "30"),
		orderLine("2", "", "Nail", "12", "1.20"),
		orderLine("3", "X", "Mystery", "1", "1"),
		orderLine("3", "B2", "Gadget", "0", "0"),
	}

	totals, err := engine.MergeChannels(sales, lines, NewStockIndex(sampleStock()))
	require.NoError(t, err)
	require.Len(t, totals, 4)

	for _, entry := range totals {
		sum := entry.RegisterQuantitySold.Add(entry.EcommerceQuantitySold)
		assert.True(t, sum.Equal(entry.TotalQuantitySold), "entry %s", entry.Name)
	}
}

func TestMergeChannels_AccumulationCommutes(t *testing.T) {
	counterSale := RegisterSaleRecord{
		ItemDescription: "Widget",
		Department:      "Front Counter",
		Category:        "Impulse",
		QuantitySold:    d("5"),
		QuantityOnHand:  d("7"),
		Supplier:        "Local",
	}

	tests := []struct {
		name     string
		mergeKey MergeKey
		stock    []StockRecord
		sales    []RegisterSaleRecord
	}{
		{"ItemInCatalog", MergeByName, sampleStock(), []RegisterSaleRecord{counterSale}},
		{"ItemNotInCatalog", MergeByName, nil, []RegisterSaleRecord{counterSale}},
		{"CompositeKey", MergeComposite, sampleStock(), []RegisterSaleRecord{counterSale}},
		{"SecondSaleOnlyBackfills", MergeByName, sampleStock(), []RegisterSaleRecord{
			counterSale,
			{ItemDescription: "Widget", Department: "Back Room", Category: "Spares", QuantitySold: d("1"), QuantityOnHand: d("2"), Supplier: "Other"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.MergeKey = tt.mergeKey
			engine := NewEngine(opts, nil)
			idx := NewStockIndex(tt.stock)
			line := orderLine("1", "A1", "Widget", "3", "30")

			saleFirst := newLedger()
			for _, sale := range tt.sales {
				engine.applyRegisterSale(saleFirst, sale, idx)
			}
			require.NoError(t, engine.applyOrderLine(saleFirst, line, idx))

			lineFirst := newLedger()
			require.NoError(t, engine.applyOrderLine(lineFirst, line, idx))
			for _, sale := range tt.sales {
				engine.applyRegisterSale(lineFirst, sale, idx)
			}

			a, b := saleFirst.snapshot(), lineFirst.snapshot()
			require.Len(t, a, 1)
			require.Len(t, b, 1)

			assert.Equal(t, a[0].Key, b[0].Key)
			assert.Equal(t, a[0].Name, b[0].Name)
			assert.Equal(t, a[0].Department, b[0].Department)
			assert.Equal(t, a[0].Category, b[0].Category)
			assert.Equal(t, a[0].Supplier, b[0].Supplier)
			assert.True(t, a[0].RegisterQuantitySold.Equal(b[0].RegisterQuantitySold))
			assert.True(t, a[0].EcommerceQuantitySold.Equal(b[0].EcommerceQuantitySold))
			assert.True(t, a[0].TotalQuantitySold.Equal(b[0].TotalQuantitySold))
			assert.Equal(t, a[0].QuantityOnHand.Valid, b[0].QuantityOnHand.Valid)
			assert.True(t, a[0].QuantityOnHand.Decimal.Equal(b[0].QuantityOnHand.Decimal))
			assert.Equal(t, "Front Counter", b[0].Department)
			assert.Equal(t, "Impulse", b[0].Category)
			assert.Equal(t, "Local", b[0].Supplier)
			assertAmount(t, "7.00", b[0].QuantityOnHand.Decimal)
			assertAmount(t, "3.00", b[0].EcommerceQuantitySold)
		})
	}
}

func TestMergeChannels_RegisterAttributesWin(t *testing.T) {
	engine := NewEngine(DefaultOptions(), nil)
	sale := RegisterSaleRecord{
		ItemDescription: "Widget", Department: "Front Counter", Category: "Impulse",
		QuantitySold: d("5"), QuantityOnHand: d("7"), Supplier: "Local",
	}

	totals, err := engine.MergeChannels([]RegisterSaleRecord{sale},
		[]OrderLineRecord{orderLine("1", "A1", "Widget", "3", "30")}, NewStockIndex(sampleStock()))
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "Front Counter", totals[0].Department)
	assertAmount(t, "7.00", totals[0].QuantityOnHand.Decimal)
	assertAmount(t, "8.00", totals[0].TotalQuantitySold)
}

func TestMergeChannels_CompositeKey(t *testing.T) {
	stock := []StockRecord{
		{SKU: "H1", Name: "Hat", Department: "Apparel"},
		{SKU: "H2", Name: "Hat ", Department: "Costume"},
	}
	sales := []RegisterSaleRecord{registerSale("Hat", "2")}
	lines := []OrderLineRecord{
		orderLine("1", "H1", "Hat", "1", "0"),
		orderLine("2", "H2", "Hat", "4", "0"),
	}

	t.Run("ByName", func(t *testing.T) {
		totals, err := NewEngine(DefaultOptions(), nil).MergeChannels(sales, lines, NewStockIndex(stock))
		require.NoError(t, err)
		require.Len(t, totals, 1)
		assertAmount(t, "7.00", totals[0].TotalQuantitySold)
	})

	t.Run("Composite", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MergeKey = MergeComposite
		totals, err := NewEngine(opts, nil).MergeChannels(sales, lines, NewStockIndex(stock))
		require.NoError(t, err)
		require.Len(t, totals, 2)

		// The register sale resolves to the first "Hat" in the catalog (H1).
		assertAmount(t, "2.00", totals[0].RegisterQuantitySold)
		assertAmount(t, "1.00", totals[0].EcommerceQuantitySold)
		assert.Equal(t, "Costume", totals[1].Department)
		assertAmount(t, "4.00", totals[1].EcommerceQuantitySold)
	})
}
