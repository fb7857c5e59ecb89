package reconcile

import "github.com/shopspring/decimal"

// NotAvailable marks values that could not be resolved from the stock catalog.
const NotAvailable = "NOT_AVAILABLE"

// StockRecord is one point-of-sale catalog entry.
type StockRecord struct {
	// SKU is the store code. It may be blank in exported data.
	SKU string `json:"sku"`

	// Name is the display name. It is not guaranteed to be unique.
	Name string `json:"name"`

	Department     string          `json:"department"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Cost           decimal.Decimal `json:"cost"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	Supplier       string          `json:"supplier"`
}

// OrderLineRecord is one line item of one e-commerce order.
// Order-level fields are repeated on every line of the same order.
type OrderLineRecord struct {
	Timestamp   string          `json:"timestamp"`
	OrderNumber string          `json:"order_number"`
	SKU         string          `json:"sku"`
	ItemName    string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	LineTotal   decimal.Decimal `json:"total"`
	TaxDetails  string          `json:"tax_details"`

	Email         string          `json:"email"`
	OrderSubtotal decimal.Decimal `json:"order_subtotal"`
	ShippingFee   decimal.Decimal `json:"order_shipping"`
	Discount      decimal.Decimal `json:"discount"`
	OrderTax      decimal.Decimal `json:"order_tax"`
	OrderTotal    decimal.Decimal `json:"order_total"`
	ShipToName    string          `json:"shipto_person_name"`
}

// RegisterSaleRecord is one item's aggregate register sales for a period.
type RegisterSaleRecord struct {
	// ItemDescription matches StockRecord.Name.
	ItemDescription string          `json:"item_description"`
	Department      string          `json:"department"`
	Category        string          `json:"category"`
	QuantitySold    decimal.Decimal `json:"quantity_sold"`
	QuantityOnHand  decimal.Decimal `json:"quantity_on_hand"`
	Supplier        string          `json:"supplier"`
}

// ItemReconciliationRow compares one order line with the catalog price.
type ItemReconciliationRow struct {
	Time          string          `json:"time"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	OrderNumber   string          `json:"order_number"`
	Department    string          `json:"department"`
	StockPrice    decimal.Decimal `json:"stock_price"`
	Quantity      decimal.Decimal `json:"quantity"`
	ExpectedTotal decimal.Decimal `json:"expected_total"`
	ReportedTotal decimal.Decimal `json:"reported_total"`
	TotalsEqual   bool            `json:"totals_equal"`
	TaxDetails    string          `json:"tax_details"`
	ItemCost      decimal.Decimal `json:"item_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`

	// Resolved is false when no stock entry matched the line.
	Resolved bool `json:"resolved"`
}

// OrderReconciliationRow compares one order's computed total with the reported total.
type OrderReconciliationRow struct {
	OrderNumber string `json:"order_number"`
	Time        string `json:"time"`
	Email       string `json:"email"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`

	// Discount is the positive magnitude subtracted from the total.
	Discount decimal.Decimal `json:"discount"`

	Tax           decimal.Decimal `json:"tax"`
	ExpectedTotal decimal.Decimal `json:"expected_total"`
	ReportedTotal decimal.Decimal `json:"reported_total"`
	TotalsEqual   bool            `json:"totals_equal"`

	// LineCount is the number of order lines folded into this row.
	LineCount int `json:"line_count"`
}

// LedgerEntry is one item's quantities sold across register and e-commerce channels.
// TotalQuantitySold always equals RegisterQuantitySold + EcommerceQuantitySold.
type LedgerEntry struct {
	// Key is the merge key the entry was accumulated under.
	Key string `json:"-"`

	Name                  string              `json:"name"`
	Department            string              `json:"department"`
	Category              string              `json:"category"`
	RegisterQuantitySold  decimal.Decimal     `json:"register_quantity_sold"`
	EcommerceQuantitySold decimal.Decimal     `json:"ecommerce_quantity_sold"`
	TotalQuantitySold     decimal.Decimal     `json:"total_quantity_sold"`
	QuantityOnHand        decimal.NullDecimal `json:"quantity_on_hand"`
	Supplier              string              `json:"supplier"`
}

// Inputs bundles the materialized datasets of one run.
type Inputs struct {
	// Stock holds one or more catalogs; earlier catalogs take precedence.
	Stock [][]StockRecord

	OrderLines []OrderLineRecord

	// RegisterSales is optional.
	RegisterSales []RegisterSaleRecord
}

// Report is the output of a full run.
type Report struct {
	Items   []ItemReconciliationRow  `json:"items"`
	Orders  []OrderReconciliationRow `json:"orders"`
	Totals  []LedgerEntry            `json:"totals"`
	Summary Summary                  `json:"summary"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	StockRecords    int `json:"stock_records"`
	OrderLines      int `json:"order_lines"`
	RegisterSales   int `json:"register_sales"`
	Orders          int `json:"orders"`
	LedgerEntries   int `json:"ledger_entries"`
	UnresolvedLines int `json:"unresolved_lines"`
	ItemMismatches  int `json:"item_mismatches"`
	OrderMismatches int `json:"order_mismatches"`

	// UnresolvedItems lists distinct item names with no stock entry, in first-seen order.
	UnresolvedItems []string `json:"unresolved_items"`
}
