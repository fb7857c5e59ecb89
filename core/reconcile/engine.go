package reconcile

import (
	"go.uber.org/zap"
)

// Engine runs reconciliations with a fixed set of options.
// It keeps no state between calls and is safe to reuse.
type Engine struct {
	opts   Options
	logger *zap.Logger
}

// NewEngine creates an engine. A nil logger discards log output.
func NewEngine(opts Options, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{opts: opts, logger: logger}
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Run performs a full reconciliation: per-line, per-order and the merged item ledger.
// It fails only on strict-mode lookup misses.
func (e *Engine) Run(in Inputs) (*Report, error) {
	idx := NewStockIndex(in.Stock...)

	items, err := e.ReconcileLines(in.OrderLines, idx)
	if err != nil {
		return nil, err
	}

	orders := e.ReconcileOrders(in.OrderLines)

	totals, err := e.MergeChannels(in.RegisterSales, in.OrderLines, idx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Items:   items,
		Orders:  orders,
		Totals:  totals,
		Summary: summarize(idx, in, items, orders, totals),
	}

	e.logger.Info("Reconciliation complete",
		zap.Int("order_lines", report.Summary.OrderLines),
		zap.Int("orders", report.Summary.Orders),
		zap.Int("ledger_entries", report.Summary.LedgerEntries),
		zap.Int("unresolved_lines", report.Summary.UnresolvedLines),
		zap.Int("item_mismatches", report.Summary.ItemMismatches),
		zap.Int("order_mismatches", report.Summary.OrderMismatches),
	)

	return report, nil
}

// summarize builds aggregate counts for a finished run.
func summarize(idx *StockIndex, in Inputs, items []ItemReconciliationRow, orders []OrderReconciliationRow, totals []LedgerEntry) Summary {
	s := Summary{
		StockRecords:    idx.Len(),
		OrderLines:      len(in.OrderLines),
		RegisterSales:   len(in.RegisterSales),
		Orders:          len(orders),
		LedgerEntries:   len(totals),
		UnresolvedItems: []string{},
	}

	seen := make(map[string]struct{})
	for _, item := range items {
		if !item.TotalsEqual {
			s.ItemMismatches++
		}
		if item.Resolved {
			continue
		}
		s.UnresolvedLines++
		if _, ok := seen[item.Name]; !ok {
			seen[item.Name] = struct{}{}
			s.UnresolvedItems = append(s.UnresolvedItems, item.Name)
		}
	}

	for _, order := range orders {
		if !order.TotalsEqual {
			s.OrderMismatches++
		}
	}

	return s
}
