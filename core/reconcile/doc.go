// Package reconcile is the reconciliation and aggregation engine behind the
// sales audit reports.
//
// It matches e-commerce order lines against a point-of-sale stock catalog by
// imprecise keys, checks expected against reported totals under a tolerance,
// and merges register and e-commerce sales into one item ledger.
//
// # Architecture
//
// The engine consists of four components, all operating on fully materialized
// in-memory records:
//
// 1. StockIndex: lookup over one or more stock catalogs by SKU or trimmed name.
// The first record (in source order) matching either key wins.
//
// 2. Line reconciliation: one ItemReconciliationRow per order line, pricing the
// line from the catalog. Missing catalog entries are flagged NOT_AVAILABLE in
// tolerant mode and abort the run in strict mode.
//
// 3. Order reconciliation: one OrderReconciliationRow per order, comparing
// subtotal + shipping - discount + tax with the reported order total.
//
// 4. Channel merge: one LedgerEntry per item across register and e-commerce
// sales, in first-seen order.
//
// # Usage
//
//	engine := reconcile.NewEngine(reconcile.DefaultOptions(), logger)
//	report, err := engine.Run(reconcile.Inputs{
//	    Stock:         [][]reconcile.StockRecord{stock},
//	    OrderLines:    lines,
//	    RegisterSales: sales,
//	})
//
// The engine is synchronous and holds no state between runs.
package reconcile
