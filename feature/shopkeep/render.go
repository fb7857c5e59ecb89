package shopkeep

import (
	"shop-audit/core/amount"
	"shop-audit/core/reconcile"
	"shop-audit/core/tabular"
)

// Report headers, in output order.
var (
	ItemHeader = []string{
		"Time", "Name", "Department", "Price (Stock)", "Quantity", "Total Expected",
		"Total Reported (eCommerce)", "Totals Equal?", "Tax Details", "Item Cost", "Total Cost",
	}
	OrderHeader = []string{
		"Order Number", "Time", "Email", "Subtotal", "Delivery Fee", "Discount", "Tax",
		"Expected Total", "Reported Total", "Totals Equal?",
	}
	TotalsHeader = []string{
		"Name", "Department", "Category", "Register Quantity Sold", "eCommerce Quantity Sold",
		"Total Quantity Sold", "Quantity on Hand", "Supplier",
	}
)

// ItemSheet renders the per-line reconciliation report.
func ItemSheet(items []reconcile.ItemReconciliationRow) tabular.Sheet {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Time,
			it.Name,
			it.Department,
			amount.Format(it.StockPrice),
			amount.Format(it.Quantity),
			amount.Format(it.ExpectedTotal),
			amount.Format(it.ReportedTotal),
			amount.YesNo(it.TotalsEqual),
			it.TaxDetails,
			amount.Format(it.ItemCost),
			amount.Format(it.TotalCost),
		})
	}
	return tabular.Sheet{Name: "Item Sales", Header: ItemHeader, Rows: rows}
}

// OrderSheet renders the per-order reconciliation report. The discount is
// shown negated since it is subtracted from the total.
func OrderSheet(orders []reconcile.OrderReconciliationRow) tabular.Sheet {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderNumber,
			o.Time,
			o.Email,
			amount.Format(o.Subtotal),
			amount.Format(o.DeliveryFee),
			amount.Format(o.Discount.Neg()),
			amount.Format(o.Tax),
			amount.Format(o.ExpectedTotal),
			amount.Format(o.ReportedTotal),
			amount.YesNo(o.TotalsEqual),
		})
	}
	return tabular.Sheet{Name: "Order Sales", Header: OrderHeader, Rows: rows}
}

// TotalsSheet renders the merged quantity ledger.
func TotalsSheet(totals []reconcile.LedgerEntry) tabular.Sheet {
	rows := make([][]string, 0, len(totals))
	for _, e := range totals {
		onHand := reconcile.NotAvailable
		if e.QuantityOnHand.Valid {
			onHand = amount.Format(e.QuantityOnHand.Decimal)
		}
		rows = append(rows, []string{
			e.Name,
			e.Department,
			e.Category,
			amount.Format(e.RegisterQuantitySold),
			amount.Format(e.EcommerceQuantitySold),
			amount.Format(e.TotalQuantitySold),
			onHand,
			e.Supplier,
		})
	}
	return tabular.Sheet{Name: "Total Items Sold", Header: TotalsHeader, Rows: rows}
}
