package reconcile

import (
	"shop-audit/core/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReconcileLine prices one order line from the catalog and compares
// price x quantity with the reported line total.
//
// In tolerant mode a missing catalog entry yields department NOT_AVAILABLE and
// zero price and cost, and is logged. In strict mode it returns a *LookupError.
func (e *Engine) ReconcileLine(line OrderLineRecord, idx *StockIndex) (ItemReconciliationRow, error) {
	sku := utils.CleanSKU(line.SKU)

	row := ItemReconciliationRow{
		Time:          line.Timestamp,
		Name:          line.ItemName,
		SKU:           sku,
		OrderNumber:   line.OrderNumber,
		Department:    NotAvailable,
		StockPrice:    decimal.Zero,
		Quantity:      line.Quantity,
		ReportedTotal: line.LineTotal,
		TaxDetails:    line.TaxDetails,
		ItemCost:      decimal.Zero,
	}

	stock, found := idx.Lookup(sku, line.ItemName)
	if found {
		row.Department = stock.Department
		row.StockPrice = stock.Price
		row.ItemCost = stock.Cost
		row.Resolved = true
	} else {
		if e.opts.LookupMode == LookupStrict {
			return ItemReconciliationRow{}, &LookupError{Name: line.ItemName, SKU: sku}
		}
		e.logger.Warn("Stock entry not found, using zero price and cost",
			zap.String("name", line.ItemName),
			zap.String("sku", sku),
			zap.String("order_number", line.OrderNumber),
		)
	}

	row.ExpectedTotal = row.StockPrice.Mul(line.Quantity)
	row.TotalCost = row.ItemCost.Mul(line.Quantity)
	row.TotalsEqual = e.opts.Tolerance.Equal(row.ExpectedTotal, row.ReportedTotal)

	return row, nil
}

// ReconcileLines reconciles every line in input order. Lines are not deduplicated.
func (e *Engine) ReconcileLines(lines []OrderLineRecord, idx *StockIndex) ([]ItemReconciliationRow, error) {
	rows := make([]ItemReconciliationRow, 0, len(lines))
	for _, line := range lines {
		row, err := e.ReconcileLine(line, idx)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
