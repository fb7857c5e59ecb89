package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shop-audit/core/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stockExport    = "Store Code (SKU),Name,Department,Price,Cost,Quantity\nA1,Widget,Hardware,10.00,4.00,12\n"
	ordersExport   = "order_number,sku,name,quantity,total,order_subtotal,order_total\n1001,A1,Widget,1,10.00,10.00,10.00\n"
	registerExport = "Item Description,Quantity Sold\nWidget,2\n"
)

func inputFiles() workspace.Config {
	return workspace.Config{
		StockFiles:   []string{"stock.csv"},
		OrdersFile:   "orders.csv",
		RegisterFile: "register_sales.csv",
	}
}

func writeFiles(t *testing.T, contents map[string]string) workspace.Store {
	t.Helper()
	dir := t.TempDir()
	for name, body := range contents {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return workspace.NewDirStore(dir)
}

func TestCheckInputs(t *testing.T) {
	ctx := context.Background()

	t.Run("All Present", func(t *testing.T) {
		store := writeFiles(t, map[string]string{
			"stock.csv":          stockExport,
			"orders.csv":         ordersExport,
			"register_sales.csv": registerExport,
		})

		report := CheckInputs(ctx, store, inputFiles())
		assert.True(t, report.Matched)
		assert.Empty(t, report.Warnings)
		require.Len(t, report.Files, 3)
		assert.Equal(t, StatusOK, report.Files["stock.csv"].Status)
		assert.Equal(t, 1, report.Files["orders.csv"].Rows)
		assert.Equal(t, "register", report.Files["register_sales.csv"].Role)
		assert.False(t, report.Files["register_sales.csv"].Required)
	})

	t.Run("Missing Register Is A Warning", func(t *testing.T) {
		store := writeFiles(t, map[string]string{
			"stock.csv":  stockExport,
			"orders.csv": ordersExport,
		})

		report := CheckInputs(ctx, store, inputFiles())
		assert.True(t, report.Matched)
		assert.Equal(t, StatusWarning, report.Files["register_sales.csv"].Status)
		require.Len(t, report.Warnings, 1)
		assert.Contains(t, report.Warnings[0], "register_sales.csv")
	})

	t.Run("Register Not Configured", func(t *testing.T) {
		store := writeFiles(t, map[string]string{
			"stock.csv":  stockExport,
			"orders.csv": ordersExport,
		})
		files := inputFiles()
		files.RegisterFile = ""

		report := CheckInputs(ctx, store, files)
		assert.True(t, report.Matched)
		assert.Len(t, report.Files, 2)
	})

	t.Run("Missing Orders", func(t *testing.T) {
		store := writeFiles(t, map[string]string{"stock.csv": stockExport})

		report := CheckInputs(ctx, store, inputFiles())
		assert.False(t, report.Matched)
		assert.Equal(t, StatusMissing, report.Files["orders.csv"].Status)
	})

	t.Run("Missing Columns", func(t *testing.T) {
		store := writeFiles(t, map[string]string{
			"stock.csv":  "Name,Department\nWidget,Hardware\n",
			"orders.csv": ordersExport,
		})

		report := CheckInputs(ctx, store, inputFiles())
		assert.False(t, report.Matched)

		stock := report.Files["stock.csv"]
		assert.Equal(t, StatusError, stock.Status)
		assert.Equal(t, []string{"Store Code (SKU)", "Price"}, stock.MissingColumns)
	})

	t.Run("Multiple Stock Files", func(t *testing.T) {
		store := writeFiles(t, map[string]string{
			"stock.csv":  stockExport,
			"extra.csv":  stockExport,
			"orders.csv": ordersExport,
		})
		files := inputFiles()
		files.StockFiles = []string{"stock.csv", "extra.csv"}
		files.RegisterFile = ""

		report := CheckInputs(ctx, store, files)
		assert.True(t, report.Matched)
		assert.Equal(t, "stock", report.Files["extra.csv"].Role)
	})
}
