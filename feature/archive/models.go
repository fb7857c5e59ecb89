package archive

import (
	"encoding/json"
	"time"

	"shop-audit/core/reconcile"

	"github.com/shopspring/decimal"
)

// Run is one archived reconciliation.
type Run struct {
	ID              string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	StartedAt       time.Time `gorm:"column:started_at;type:datetime;index" json:"started_at"`
	StockRecords    int       `gorm:"column:stock_records;type:int" json:"stock_records"`
	OrderLines      int       `gorm:"column:order_lines;type:int" json:"order_lines"`
	RegisterSales   int       `gorm:"column:register_sales;type:int" json:"register_sales"`
	OrderCount      int       `gorm:"column:order_count;type:int" json:"orders"`
	LedgerEntries   int       `gorm:"column:ledger_entries;type:int" json:"ledger_entries"`
	UnresolvedLines int       `gorm:"column:unresolved_lines;type:int" json:"unresolved_lines"`
	ItemMismatches  int       `gorm:"column:item_mismatches;type:int" json:"item_mismatches"`
	OrderMismatches int       `gorm:"column:order_mismatches;type:int" json:"order_mismatches"`
	// UnresolvedItems is a JSON array of item names.
	UnresolvedItems string `gorm:"column:unresolved_items;type:text" json:"unresolved_items"`

	Items  []Item  `gorm:"foreignKey:RunID" json:"items,omitempty"`
	Orders []Order `gorm:"foreignKey:RunID" json:"order_rows,omitempty"`
	Totals []Total `gorm:"foreignKey:RunID" json:"totals,omitempty"`
}

func (Run) TableName() string { return "audit_runs" }

// Item is one archived order line reconciliation.
type Item struct {
	ID            uint            `gorm:"column:id;primaryKey" json:"-"`
	RunID         string          `gorm:"column:run_id;type:varchar(36);index" json:"-"`
	Position      int             `gorm:"column:position;type:int" json:"position"`
	Time          string          `gorm:"column:time;type:varchar(64)" json:"time"`
	Name          string          `gorm:"column:name;type:varchar(255)" json:"name"`
	SKU           string          `gorm:"column:sku;type:varchar(64)" json:"sku"`
	OrderNumber   string          `gorm:"column:order_number;type:varchar(64)" json:"order_number"`
	Department    string          `gorm:"column:department;type:varchar(255)" json:"department"`
	StockPrice    decimal.Decimal `gorm:"column:stock_price;type:decimal(20,4)" json:"stock_price"`
	Quantity      decimal.Decimal `gorm:"column:quantity;type:decimal(20,4)" json:"quantity"`
	ExpectedTotal decimal.Decimal `gorm:"column:expected_total;type:decimal(20,4)" json:"expected_total"`
	ReportedTotal decimal.Decimal `gorm:"column:reported_total;type:decimal(20,4)" json:"reported_total"`
	TotalsEqual   bool            `gorm:"column:totals_equal" json:"totals_equal"`
	TaxDetails    string          `gorm:"column:tax_details;type:varchar(255)" json:"tax_details"`
	ItemCost      decimal.Decimal `gorm:"column:item_cost;type:decimal(20,4)" json:"item_cost"`
	TotalCost     decimal.Decimal `gorm:"column:total_cost;type:decimal(20,4)" json:"total_cost"`
	Resolved      bool            `gorm:"column:resolved" json:"resolved"`
}

func (Item) TableName() string { return "audit_items" }

// Order is one archived order reconciliation.
type Order struct {
	ID            uint            `gorm:"column:id;primaryKey" json:"-"`
	RunID         string          `gorm:"column:run_id;type:varchar(36);index" json:"-"`
	Position      int             `gorm:"column:position;type:int" json:"position"`
	OrderNumber   string          `gorm:"column:order_number;type:varchar(64)" json:"order_number"`
	Time          string          `gorm:"column:time;type:varchar(64)" json:"time"`
	Email         string          `gorm:"column:email;type:varchar(255)" json:"email"`
	Subtotal      decimal.Decimal `gorm:"column:subtotal;type:decimal(20,4)" json:"subtotal"`
	DeliveryFee   decimal.Decimal `gorm:"column:delivery_fee;type:decimal(20,4)" json:"delivery_fee"`
	Discount      decimal.Decimal `gorm:"column:discount;type:decimal(20,4)" json:"discount"`
	Tax           decimal.Decimal `gorm:"column:tax;type:decimal(20,4)" json:"tax"`
	ExpectedTotal decimal.Decimal `gorm:"column:expected_total;type:decimal(20,4)" json:"expected_total"`
	ReportedTotal decimal.Decimal `gorm:"column:reported_total;type:decimal(20,4)" json:"reported_total"`
	TotalsEqual   bool            `gorm:"column:totals_equal" json:"totals_equal"`
	LineCount     int             `gorm:"column:line_count;type:int" json:"line_count"`
}

func (Order) TableName() string { return "audit_orders" }

// Total is one archived ledger entry.
type Total struct {
	ID                    uint                `gorm:"column:id;primaryKey" json:"-"`
	RunID                 string              `gorm:"column:run_id;type:varchar(36);index" json:"-"`
	Position              int                 `gorm:"column:position;type:int" json:"position"`
	Name                  string              `gorm:"column:name;type:varchar(255)" json:"name"`
	Department            string              `gorm:"column:department;type:varchar(255)" json:"department"`
	Category              string              `gorm:"column:category;type:varchar(255)" json:"category"`
	RegisterQuantitySold  decimal.Decimal     `gorm:"column:register_quantity_sold;type:decimal(20,4)" json:"register_quantity_sold"`
	EcommerceQuantitySold decimal.Decimal     `gorm:"column:ecommerce_quantity_sold;type:decimal(20,4)" json:"ecommerce_quantity_sold"`
	TotalQuantitySold     decimal.Decimal     `gorm:"column:total_quantity_sold;type:decimal(20,4)" json:"total_quantity_sold"`
	QuantityOnHand        decimal.NullDecimal `gorm:"column:quantity_on_hand;type:decimal(20,4)" json:"quantity_on_hand"`
	Supplier              string              `gorm:"column:supplier;type:varchar(255)" json:"supplier"`
}

func (Total) TableName() string { return "audit_totals" }

// Models lists every archive model, parents first.
func Models() []interface{} {
	return []interface{}{&Run{}, &Item{}, &Order{}, &Total{}}
}

// NewRun converts a finished report into its archived form.
func NewRun(id string, startedAt time.Time, report *reconcile.Report) Run {
	s := report.Summary
	unresolved, _ := json.Marshal(s.UnresolvedItems)

	run := Run{
		ID:              id,
		StartedAt:       startedAt.UTC(),
		StockRecords:    s.StockRecords,
		OrderLines:      s.OrderLines,
		RegisterSales:   s.RegisterSales,
		OrderCount:      s.Orders,
		LedgerEntries:   s.LedgerEntries,
		UnresolvedLines: s.UnresolvedLines,
		ItemMismatches:  s.ItemMismatches,
		OrderMismatches: s.OrderMismatches,
		UnresolvedItems: string(unresolved),
	}

	for i, it := range report.Items {
		run.Items = append(run.Items, Item{
			RunID:         id,
			Position:      i,
			Time:          it.Time,
			Name:          it.Name,
			SKU:           it.SKU,
			OrderNumber:   it.OrderNumber,
			Department:    it.Department,
			StockPrice:    it.StockPrice,
			Quantity:      it.Quantity,
			ExpectedTotal: it.ExpectedTotal,
			ReportedTotal: it.ReportedTotal,
			TotalsEqual:   it.TotalsEqual,
			TaxDetails:    it.TaxDetails,
			ItemCost:      it.ItemCost,
			TotalCost:     it.TotalCost,
			Resolved:      it.Resolved,
		})
	}

	for i, o := range report.Orders {
		run.Orders = append(run.Orders, Order{
			RunID:         id,
			Position:      i,
			OrderNumber:   o.OrderNumber,
			Time:          o.Time,
			Email:         o.Email,
			Subtotal:      o.Subtotal,
			DeliveryFee:   o.DeliveryFee,
			Discount:      o.Discount,
			Tax:           o.Tax,
			ExpectedTotal: o.ExpectedTotal,
			ReportedTotal: o.ReportedTotal,
			TotalsEqual:   o.TotalsEqual,
			LineCount:     o.LineCount,
		})
	}

	for i, e := range report.Totals {
		run.Totals = append(run.Totals, Total{
			RunID:                 id,
			Position:              i,
			Name:                  e.Name,
			Department:            e.Department,
			Category:              e.Category,
			RegisterQuantitySold:  e.RegisterQuantitySold,
			EcommerceQuantitySold: e.EcommerceQuantitySold,
			TotalQuantitySold:     e.TotalQuantitySold,
			QuantityOnHand:        e.QuantityOnHand,
			Supplier:              e.Supplier,
		})
	}

	return run
}
