package reconcile

import (
	"shop-audit/core/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ledger is an insertion-ordered mapping from merge key to entry.
// It is owned by a single MergeChannels call.
type ledger struct {
	entries []*LedgerEntry
	index   map[string]int

	// Keys whose attributes come from a register sale.
	registered map[string]bool
}

func newLedger() *ledger {
	return &ledger{index: make(map[string]int), registered: make(map[string]bool)}
}

func (l *ledger) get(key string) (*LedgerEntry, bool) {
	pos, ok := l.index[key]
	if !ok {
		return nil, false
	}
	return l.entries[pos], true
}

func (l *ledger) add(entry *LedgerEntry) {
	l.index[entry.Key] = len(l.entries)
	l.entries = append(l.entries, entry)
}

// snapshot copies the entries out in insertion order.
func (l *ledger) snapshot() []LedgerEntry {
	out := make([]LedgerEntry, len(l.entries))
	for i, entry := range l.entries {
		out[i] = *entry
	}
	return out
}

// MergeChannels builds the total-items-sold ledger. Register sales are applied
// first, then order lines; entries are emitted in first-seen order.
//
// A register sale creates an entry from its own attributes. An order line
// creates an entry from its stock record, with NOT_AVAILABLE attributes when
// the item is not in the catalog (or a *LookupError in strict mode). The first
// register sale reaching an entry replaces stock attributes, so the final
// entry does not depend on which channel is applied first.
func (e *Engine) MergeChannels(sales []RegisterSaleRecord, lines []OrderLineRecord, idx *StockIndex) ([]LedgerEntry, error) {
	l := newLedger()

	for _, sale := range sales {
		e.applyRegisterSale(l, sale, idx)
	}

	for _, line := range lines {
		if err := e.applyOrderLine(l, line, idx); err != nil {
			return nil, err
		}
	}

	return l.snapshot(), nil
}

func (e *Engine) applyRegisterSale(l *ledger, sale RegisterSaleRecord, idx *StockIndex) {
	key := e.registerKey(sale, idx)

	if entry, ok := l.get(key); ok {
		entry.RegisterQuantitySold = entry.RegisterQuantitySold.Add(sale.QuantitySold)
		entry.TotalQuantitySold = entry.TotalQuantitySold.Add(sale.QuantitySold)
		if l.registered[key] {
			backfill(entry, sale)
		} else {
			adopt(entry, sale)
			l.registered[key] = true
		}
		return
	}

	l.add(&LedgerEntry{
		Key:                   key,
		Name:                  utils.NormalizeName(sale.ItemDescription),
		Department:            sale.Department,
		Category:              sale.Category,
		RegisterQuantitySold:  sale.QuantitySold,
		EcommerceQuantitySold: decimal.Zero,
		TotalQuantitySold:     sale.QuantitySold,
		QuantityOnHand:        decimal.NullDecimal{Decimal: sale.QuantityOnHand, Valid: true},
		Supplier:              sale.Supplier,
	})
	l.registered[key] = true
}

func (e *Engine) applyOrderLine(l *ledger, line OrderLineRecord, idx *StockIndex) error {
	key := e.orderKey(line, idx)

	if entry, ok := l.get(key); ok {
		entry.EcommerceQuantitySold = entry.EcommerceQuantitySold.Add(line.Quantity)
		entry.TotalQuantitySold = entry.TotalQuantitySold.Add(line.Quantity)
		return nil
	}

	entry := &LedgerEntry{
		Key:                   key,
		Name:                  utils.NormalizeName(line.ItemName),
		Department:            NotAvailable,
		Category:              NotAvailable,
		RegisterQuantitySold:  decimal.Zero,
		EcommerceQuantitySold: line.Quantity,
		TotalQuantitySold:     line.Quantity,
		Supplier:              NotAvailable,
	}

	sku := utils.CleanSKU(line.SKU)
	if stock, ok := e.ledgerLookup(idx, sku, line.ItemName); ok {
		entry.Department = stock.Department
		entry.Category = stock.Category
		entry.QuantityOnHand = decimal.NullDecimal{Decimal: stock.QuantityOnHand, Valid: true}
		entry.Supplier = stock.Supplier
	} else if e.opts.LookupMode == LookupStrict {
		return &LookupError{Name: line.ItemName, SKU: sku}
	} else {
		e.logger.Warn("Stock entry not found for ledger item",
			zap.String("name", line.ItemName),
			zap.String("sku", sku),
		)
	}

	l.add(entry)
	return nil
}

// ledgerLookup finds the stock record describing a new ledger entry. With a
// composite key the SKU alone decides when it is known, so entries sharing a
// display name keep their own attributes.
func (e *Engine) ledgerLookup(idx *StockIndex, sku, name string) (StockRecord, bool) {
	if e.opts.MergeKey == MergeComposite && sku != "" {
		if stock, ok := idx.LookupSKU(sku); ok {
			return stock, true
		}
	}
	return idx.Lookup(sku, name)
}

// adopt replaces the stock attributes of an entry with those of a register sale.
func adopt(entry *LedgerEntry, sale RegisterSaleRecord) {
	entry.Name = utils.NormalizeName(sale.ItemDescription)
	entry.Department = sale.Department
	entry.Category = sale.Category
	entry.QuantityOnHand = decimal.NullDecimal{Decimal: sale.QuantityOnHand, Valid: true}
	entry.Supplier = sale.Supplier
}

// backfill fills attributes left NOT_AVAILABLE with those of a later register sale.
func backfill(entry *LedgerEntry, sale RegisterSaleRecord) {
	if entry.Department == NotAvailable {
		entry.Department = sale.Department
	}
	if entry.Category == NotAvailable {
		entry.Category = sale.Category
	}
	if entry.Supplier == NotAvailable {
		entry.Supplier = sale.Supplier
	}
	if !entry.QuantityOnHand.Valid {
		entry.QuantityOnHand = decimal.NullDecimal{Decimal: sale.QuantityOnHand, Valid: true}
	}
}

func (e *Engine) registerKey(sale RegisterSaleRecord, idx *StockIndex) string {
	name := utils.NormalizeName(sale.ItemDescription)
	if e.opts.MergeKey == MergeComposite {
		if stock, ok := idx.LookupName(name); ok {
			if sku := utils.CleanSKU(stock.SKU); sku != "" {
				return "sku:" + sku
			}
		}
	}
	return "name:" + name
}

func (e *Engine) orderKey(line OrderLineRecord, idx *StockIndex) string {
	name := utils.NormalizeName(line.ItemName)
	if e.opts.MergeKey == MergeComposite {
		if sku := utils.CleanSKU(line.SKU); sku != "" {
			return "sku:" + sku
		}
		if stock, ok := idx.LookupName(name); ok {
			if sku := utils.CleanSKU(stock.SKU); sku != "" {
				return "sku:" + sku
			}
		}
	}
	return "name:" + name
}
