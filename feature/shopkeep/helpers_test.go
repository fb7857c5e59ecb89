package shopkeep_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shop-audit/core/reconcile"
	"shop-audit/core/workspace"
	"shop-audit/feature/shopkeep"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const stockCSV = `Store Code (SKU),Name,Department,Category,Price,Cost,Quantity,Supplier
A1,Widget,Hardware,Tools,10.00,4.00,12,Acme
B2,Gadget,Electronics,Gizmos,25.00,11.50,3,Globex
`

const ordersCSV = `timestamp,order_number,sku,name,quantity,total,tax_details,email,order_subtotal,order_shipping,discount,order_tax,order_total,shipto_person_name
2024-05-01 10:00,1001,"""A1""",Widget,3,30.00,GST,a@example.com,80.00,5.00,10.00,8.00,83.00,Ann
2024-05-01 10:00,1001,B2,Gadget,2,50.00,GST,a@example.com,80.00,5.00,10.00,8.00,83.00,Ann
2024-05-02 12:30,1002,Z9,Mystery,1,7.00,,b@example.com,7.00,0,,0,7.00,Bob
`

const registerCSV = `Item Description,Department,Category,Quantity Sold,Quantity on Hand,Supplier
Widget,Hardware,Tools,5,7,Acme
Tea,Grocery,Tea,2,40,Leafy
`

// crlf joins report lines the way the CSV writer terminates them.
func crlf(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func files() workspace.Config {
	return workspace.Config{
		Backend:      workspace.BackendLocal,
		StockFiles:   []string{"stock.csv"},
		OrdersFile:   "orders.csv",
		RegisterFile: "register_sales.csv",
		ItemReport:   "item_sales.csv",
		OrderReport:  "order_sales.csv",
		TotalsReport: "total_items_sold.csv",
		Format:       "csv",
	}
}

// writeWorkspace creates a directory holding the given files.
func writeWorkspace(t *testing.T, contents map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range contents {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func sampleWorkspace(t *testing.T) string {
	return writeWorkspace(t, map[string]string{
		"stock.csv":          stockCSV,
		"orders.csv":         ordersCSV,
		"register_sales.csv": registerCSV,
	})
}

func newService(t *testing.T, dir string, cfg workspace.Config) *shopkeep.Service {
	t.Helper()
	cfg.Dir = dir
	engine := reconcile.NewEngine(reconcile.DefaultOptions(), zap.NewNop())
	svc, err := shopkeep.NewService(workspace.NewDirStore(dir), cfg, engine, zap.NewNop())
	require.NoError(t, err)
	return svc
}
