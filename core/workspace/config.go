package workspace

import (
	"path"
	"strings"
)

const (
	BackendLocal  = "local"
	BackendBucket = "bucket"
)

// Config holds the workspace layout.
type Config struct {
	// Backend selects where files live (local, bucket).
	Backend string `mapstructure:"backend" default:"local"`
	// Dir is the local directory used by the local backend.
	Dir string `mapstructure:"dir" default:"."`
	// Prefix is prepended to object names by the bucket backend.
	Prefix string `mapstructure:"prefix" default:""`
	// StockFiles are merged in order into one catalog; earlier files win.
	StockFiles []string `mapstructure:"stock_files" default:"stock.csv"`
	// OrdersFile is the e-commerce order lines export.
	OrdersFile string `mapstructure:"orders_file" default:"orders.csv"`
	// RegisterFile is the optional register sales export.
	RegisterFile string `mapstructure:"register_file" default:"register_sales.csv"`
	// ItemReport is the per-line reconciliation output.
	ItemReport string `mapstructure:"item_report" default:"item_sales.csv"`
	// OrderReport is the per-order reconciliation output.
	OrderReport string `mapstructure:"order_report" default:"order_sales.csv"`
	// TotalsReport is the merged quantity ledger output.
	TotalsReport string `mapstructure:"totals_report" default:"total_items_sold.csv"`
	// Format is the report encoding (csv, xlsx).
	Format string `mapstructure:"format" default:"csv"`
}

// Inputs lists every input file name, stock files first.
func (c Config) Inputs() []string {
	names := make([]string, 0, len(c.StockFiles)+2)
	names = append(names, c.StockFiles...)
	names = append(names, c.OrdersFile)
	if c.RegisterFile != "" {
		names = append(names, c.RegisterFile)
	}
	return names
}

// ReportFile swaps the extension of a configured report name for ext.
func ReportFile(name, ext string) string {
	if ext == "" {
		return name
	}
	return strings.TrimSuffix(name, path.Ext(name)) + "." + ext
}
