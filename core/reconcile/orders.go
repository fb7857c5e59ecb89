package reconcile

import "github.com/shopspring/decimal"

// ExpectedOrderTotal computes subtotal + shipping - discount + tax for an order line.
// Shipping is left out when includeShipping is false.
func ExpectedOrderTotal(line OrderLineRecord, includeShipping bool) decimal.Decimal {
	total := line.OrderSubtotal.Sub(line.Discount).Add(line.OrderTax)
	if includeShipping {
		total = total.Add(line.ShippingFee)
	}
	return total
}

// ReconcileOrders emits one row per order. Order-level fields come from the
// first line of each order.
//
// With GroupAll, every line sharing an order number is folded into one row,
// in order of first appearance. With GroupAdjacent, only consecutive lines are
// folded, reproducing the legacy reports byte for byte.
func (e *Engine) ReconcileOrders(lines []OrderLineRecord) []OrderReconciliationRow {
	rows := make([]OrderReconciliationRow, 0)
	positions := make(map[string]int)

	for i, line := range lines {
		switch e.opts.OrderGrouping {
		case GroupAdjacent:
			if i > 0 && lines[i-1].OrderNumber == line.OrderNumber {
				rows[len(rows)-1].LineCount++
				continue
			}
		default:
			if pos, ok := positions[line.OrderNumber]; ok {
				rows[pos].LineCount++
				continue
			}
			positions[line.OrderNumber] = len(rows)
		}

		rows = append(rows, e.reconcileOrder(line))
	}

	return rows
}

// reconcileOrder builds the row for an order from its first line.
func (e *Engine) reconcileOrder(line OrderLineRecord) OrderReconciliationRow {
	expected := ExpectedOrderTotal(line, e.opts.IncludeShipping)

	return OrderReconciliationRow{
		OrderNumber:   line.OrderNumber,
		Time:          line.Timestamp,
		Email:         line.Email,
		Subtotal:      line.OrderSubtotal,
		DeliveryFee:   line.ShippingFee,
		Discount:      line.Discount,
		Tax:           line.OrderTax,
		ExpectedTotal: expected,
		ReportedTotal: line.OrderTotal,
		TotalsEqual:   e.opts.Tolerance.Equal(expected, line.OrderTotal),
		LineCount:     1,
	}
}
