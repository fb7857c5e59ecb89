package reconcile

import (
	"shop-audit/core/amount"
	"shop-audit/core/utils"
)

// Field names a StockRecord attribute for Resolve.
type Field string

const (
	FieldSKU            Field = "sku"
	FieldName           Field = "name"
	FieldDepartment     Field = "department"
	FieldCategory       Field = "category"
	FieldPrice          Field = "price"
	FieldCost           Field = "cost"
	FieldQuantityOnHand Field = "quantity_on_hand"
	FieldSupplier       Field = "supplier"
)

// Value returns the display value of a field. Amounts are rendered with two decimals.
func (r StockRecord) Value(field Field) (string, bool) {
	switch field {
	case FieldSKU:
		return r.SKU, true
	case FieldName:
		return r.Name, true
	case FieldDepartment:
		return r.Department, true
	case FieldCategory:
		return r.Category, true
	case FieldPrice:
		return amount.Format(r.Price), true
	case FieldCost:
		return amount.Format(r.Cost), true
	case FieldQuantityOnHand:
		return amount.Format(r.QuantityOnHand), true
	case FieldSupplier:
		return r.Supplier, true
	default:
		return "", false
	}
}

// Resolution is the outcome of a tolerant field lookup.
type Resolution struct {
	Value string
	Found bool
}

// Or returns the resolved value, or fallback when nothing was found.
func (r Resolution) Or(fallback string) string {
	if r.Found {
		return r.Value
	}
	return fallback
}

// StockIndex resolves items against one logical catalog built from one or more
// stock sources. It is read-only after construction.
type StockIndex struct {
	records []StockRecord

	// First position of each key in records.
	bySKU  map[string]int
	byName map[string]int
}

// NewStockIndex builds an index over the given sources in order.
// When a key appears more than once, the earliest record wins.
func NewStockIndex(sources ...[]StockRecord) *StockIndex {
	total := 0
	for _, src := range sources {
		total += len(src)
	}

	idx := &StockIndex{
		records: make([]StockRecord, 0, total),
		bySKU:   make(map[string]int, total),
		byName:  make(map[string]int, total),
	}

	for _, src := range sources {
		for _, rec := range src {
			pos := len(idx.records)
			idx.records = append(idx.records, rec)

			if sku := utils.CleanSKU(rec.SKU); sku != "" {
				if _, exists := idx.bySKU[sku]; !exists {
					idx.bySKU[sku] = pos
				}
			}
			if name := utils.NormalizeName(rec.Name); name != "" {
				if _, exists := idx.byName[name]; !exists {
					idx.byName[name] = pos
				}
			}
		}
	}

	return idx
}

// Len returns the number of catalog records.
func (idx *StockIndex) Len() int {
	return len(idx.records)
}

// Lookup returns the first record, in source order, whose trimmed name equals
// name or whose SKU equals sku. Blank keys never match.
func (idx *StockIndex) Lookup(sku, name string) (StockRecord, bool) {
	pos := -1

	if key := utils.CleanSKU(sku); key != "" {
		if p, ok := idx.bySKU[key]; ok {
			pos = p
		}
	}
	if key := utils.NormalizeName(name); key != "" {
		if p, ok := idx.byName[key]; ok && (pos < 0 || p < pos) {
			pos = p
		}
	}

	if pos < 0 {
		return StockRecord{}, false
	}
	return idx.records[pos], true
}

// LookupSKU returns the first record with the given SKU.
func (idx *StockIndex) LookupSKU(sku string) (StockRecord, bool) {
	return idx.Lookup(sku, "")
}

// LookupName returns the first record with the given trimmed name.
func (idx *StockIndex) LookupName(name string) (StockRecord, bool) {
	return idx.Lookup("", name)
}

// Find is the strict form of Lookup: a miss is a *LookupError.
func (idx *StockIndex) Find(sku, name string) (StockRecord, error) {
	rec, ok := idx.Lookup(sku, name)
	if !ok {
		return StockRecord{}, &LookupError{Name: name, SKU: sku}
	}
	return rec, nil
}

// Resolve returns one field of the matching record. It never fails;
// a miss (or an unknown field) yields a Resolution with Found false.
func (idx *StockIndex) Resolve(field Field, sku, name string) Resolution {
	rec, ok := idx.Lookup(sku, name)
	if !ok {
		return Resolution{}
	}
	v, ok := rec.Value(field)
	return Resolution{Value: v, Found: ok}
}

// ResolveStrict returns one field of the matching record or a *LookupError.
func (idx *StockIndex) ResolveStrict(field Field, sku, name string) (string, error) {
	rec, err := idx.Find(sku, name)
	if err != nil {
		return "", err
	}
	v, _ := rec.Value(field)
	return v, nil
}
