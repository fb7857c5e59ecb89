package reconcile

import (
	"testing"

	"shop-audit/core/amount"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return amount.MustParse(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want, amount.Format(got), msgAndArgs...)
}

func sampleStock() []StockRecord {
	return []StockRecord{
		{SKU: "A1", Name: "Widget", Department: "Hardware", Category: "Tools", Price: d("10.00"), Cost: d("4.00"), QuantityOnHand: d("12"), Supplier: "Acme"},
		{SKU: "B2", Name: "Gadget", Department: "Electronics", Category: "Gizmos", Price: d("25.00"), Cost: d("11.50"), QuantityOnHand: d("3"), Supplier: "Globex"},
		{SKU: "", Name: "Loose Tea", Department: "Grocery", Category: "Tea", Price: d("6.50"), Cost: d("2.00"), QuantityOnHand: d("40"), Supplier: "Leafy"},
	}
}

func orderLine(order, sku, name, qty, total string) OrderLineRecord {
	return OrderLineRecord{
		Timestamp:   "2024-03-01 10:00",
		OrderNumber: order,
		SKU:         sku,
		ItemName:    name,
		Quantity:    d(qty),
		LineTotal:   d(total),
	}
}
