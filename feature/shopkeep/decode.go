package shopkeep

import (
	"shop-audit/core/reconcile"
	"shop-audit/core/tabular"

	"github.com/shopspring/decimal"
)

// amounts parses several numeric cells of one row, keeping the first error.
type amounts struct {
	b   *binding
	row tabular.Row
	err error
}

func (a *amounts) get(key string) decimal.Decimal {
	if a.err != nil {
		return decimal.Zero
	}
	d, err := a.b.amount(a.row, key)
	if err != nil {
		a.err = err
	}
	return d
}

// DecodeStock converts a stock export into catalog records.
func DecodeStock(t *tabular.Table, source string) ([]reconcile.StockRecord, error) {
	b, err := StockProfile.bind(t, source)
	if err != nil {
		return nil, err
	}

	records := make([]reconcile.StockRecord, 0, t.Len())
	for _, row := range t.Rows() {
		a := amounts{b: b, row: row}
		rec := reconcile.StockRecord{
			SKU:            b.text(row, "sku"),
			Name:           b.text(row, "name"),
			Department:     b.text(row, "department"),
			Category:       b.text(row, "category"),
			Price:          a.get("price"),
			Cost:           a.get("cost"),
			QuantityOnHand: a.get("quantity"),
			Supplier:       b.text(row, "supplier"),
		}
		if a.err != nil {
			return nil, a.err
		}
		records = append(records, rec)
	}
	return records, nil
}

// DecodeOrderLines converts an order lines export into order line records.
func DecodeOrderLines(t *tabular.Table, source string) ([]reconcile.OrderLineRecord, error) {
	b, err := OrderProfile.bind(t, source)
	if err != nil {
		return nil, err
	}

	lines := make([]reconcile.OrderLineRecord, 0, t.Len())
	for _, row := range t.Rows() {
		a := amounts{b: b, row: row}
		line := reconcile.OrderLineRecord{
			Timestamp:     b.text(row, "timestamp"),
			OrderNumber:   b.text(row, "order_number"),
			SKU:           b.text(row, "sku"),
			ItemName:      b.text(row, "name"),
			Quantity:      a.get("quantity"),
			LineTotal:     a.get("total"),
			TaxDetails:    b.text(row, "tax_details"),
			Email:         b.text(row, "email"),
			OrderSubtotal: a.get("order_subtotal"),
			ShippingFee:   a.get("order_shipping"),
			Discount:      a.get("discount"),
			OrderTax:      a.get("order_tax"),
			OrderTotal:    a.get("order_total"),
			ShipToName:    b.text(row, "shipto_person_name"),
		}
		if a.err != nil {
			return nil, a.err
		}
		if line.Quantity.IsNegative() {
			return nil, b.fail(row, "quantity", ErrNegativeQuantity)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// DecodeRegisterSales converts a register sales export into sale records.
func DecodeRegisterSales(t *tabular.Table, source string) ([]reconcile.RegisterSaleRecord, error) {
	b, err := RegisterProfile.bind(t, source)
	if err != nil {
		return nil, err
	}

	sales := make([]reconcile.RegisterSaleRecord, 0, t.Len())
	for _, row := range t.Rows() {
		a := amounts{b: b, row: row}
		sale := reconcile.RegisterSaleRecord{
			ItemDescription: b.text(row, "item_description"),
			Department:      b.text(row, "department"),
			Category:        b.text(row, "category"),
			QuantitySold:    a.get("quantity_sold"),
			QuantityOnHand:  a.get("quantity_on_hand"),
			Supplier:        b.text(row, "supplier"),
		}
		if a.err != nil {
			return nil, a.err
		}
		sales = append(sales, sale)
	}
	return sales, nil
}
