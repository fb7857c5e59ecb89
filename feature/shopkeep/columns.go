package shopkeep

import (
	"errors"

	"shop-audit/core/amount"
	"shop-audit/core/tabular"
	"shop-audit/core/utils"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissingColumn is wrapped by a RecordError when a required header is absent.
	ErrMissingColumn = errors.New("required column is missing")
	// ErrNegativeQuantity is wrapped by a RecordError for an order line sold in a negative quantity.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// Column is one logical input field and the headers it may appear under.
type Column struct {
	Key      string
	Aliases  []string
	Required bool
}

// Profile describes the columns of one kind of export.
type Profile struct {
	Name    string
	Columns []Column
}

// Stock export columns.
var StockProfile = Profile{
	Name: "stock",
	Columns: []Column{
		{Key: "sku", Aliases: []string{"Store Code (SKU)", "Store Code", "SKU"}, Required: true},
		{Key: "name", Aliases: []string{"Name"}, Required: true},
		{Key: "department", Aliases: []string{"Department"}},
		{Key: "category", Aliases: []string{"Category"}},
		{Key: "price", Aliases: []string{"Price"}, Required: true},
		{Key: "cost", Aliases: []string{"Cost"}},
		{Key: "quantity", Aliases: []string{"Quantity", "Quantity on Hand", "Qty"}},
		{Key: "supplier", Aliases: []string{"Supplier"}},
	},
}

// Order lines export columns.
var OrderProfile = Profile{
	Name: "orders",
	Columns: []Column{
		{Key: "timestamp", Aliases: []string{"timestamp"}},
		{Key: "order_number", Aliases: []string{"order_number"}, Required: true},
		{Key: "sku", Aliases: []string{"sku"}, Required: true},
		{Key: "name", Aliases: []string{"name"}, Required: true},
		{Key: "quantity", Aliases: []string{"quantity"}, Required: true},
		{Key: "total", Aliases: []string{"total"}, Required: true},
		{Key: "tax_details", Aliases: []string{"tax_details"}},
		{Key: "email", Aliases: []string{"email"}},
		{Key: "order_subtotal", Aliases: []string{"order_subtotal"}, Required: true},
		{Key: "order_shipping", Aliases: []string{"order_shipping"}},
		{Key: "discount", Aliases: []string{"discount"}},
		{Key: "order_tax", Aliases: []string{"order_tax"}},
		{Key: "order_total", Aliases: []string{"order_total"}, Required: true},
		{Key: "shipto_person_name", Aliases: []string{"shipto_person_name"}},
	},
}

// Register sales export columns.
var RegisterProfile = Profile{
	Name: "register",
	Columns: []Column{
		{Key: "item_description", Aliases: []string{"Item Description"}, Required: true},
		{Key: "department", Aliases: []string{"Department"}},
		{Key: "category", Aliases: []string{"Category"}},
		{Key: "quantity_sold", Aliases: []string{"Quantity Sold"}, Required: true},
		{Key: "quantity_on_hand", Aliases: []string{"Quantity on Hand"}},
		{Key: "supplier", Aliases: []string{"Supplier"}},
	},
}

// Missing returns the preferred header of every required column t lacks.
func (p Profile) Missing(t *tabular.Table) []string {
	var missing []string
	for _, col := range p.Columns {
		if _, ok := t.Column(col.Aliases...); !ok && col.Required {
			missing = append(missing, col.Aliases[0])
		}
	}
	return missing
}

// binding maps a profile's keys onto the column positions of one table.
type binding struct {
	source  string
	pos     map[string]int
	headers map[string]string
}

// bind resolves the profile against t. The first missing required column is
// reported as a RecordError.
func (p Profile) bind(t *tabular.Table, source string) (*binding, error) {
	b := &binding{
		source:  source,
		pos:     make(map[string]int, len(p.Columns)),
		headers: make(map[string]string, len(p.Columns)),
	}
	for _, col := range p.Columns {
		i, ok := t.Column(col.Aliases...)
		if !ok {
			if col.Required {
				return nil, &RecordError{Source: source, Column: col.Aliases[0], Err: ErrMissingColumn}
			}
			i = -1
		}
		b.pos[col.Key] = i
		b.headers[col.Key] = col.Aliases[0]
		if i >= 0 {
			b.headers[col.Key] = t.Header[i]
		}
	}
	return b, nil
}

func (b *binding) text(row tabular.Row, key string) string {
	return utils.CleanText(row.Get(b.pos[key]))
}

func (b *binding) amount(row tabular.Row, key string) (decimal.Decimal, error) {
	d, err := amount.Parse(utils.CleanCell(row.Get(b.pos[key])))
	if err != nil {
		return decimal.Zero, b.fail(row, key, err)
	}
	return d, nil
}

// fail locates err at the cell of key in row.
func (b *binding) fail(row tabular.Row, key string, err error) *RecordError {
	return &RecordError{Source: b.source, Line: row.Line, Column: utils.CleanCell(b.headers[key]), Err: err}
}
