package cmd

import (
	"context"
	"fmt"
	"time"

	"shop-audit/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command. Unset flags keep the configured value.
	reconcileDir       string
	reconcileStock     []string
	reconcileOrders    string
	reconcileRegister  string
	reconcileFormat    string
	reconcileStrict    bool
	reconcileMergeKey  string
	reconcileGrouping  string
	reconcileNoArchive bool
)

// reconcileCmd reconciles the workspace exports and writes the three reports.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile order exports against the stock catalog",
	Long: `Reconcile reads the stock, orders and register sales exports from the
workspace and writes three reports: item sales, order sales and total items sold.

Examples:
  # Reconcile the exports in the current directory
  shop-audit reconcile

  # Two stock catalogs, the first one wins on duplicates
  shop-audit reconcile --stock stock.csv --stock legacy_stock.csv

  # Abort on the first item missing from the catalog
  shop-audit reconcile --strict

  # Excel reports, ledger keyed by SKU where known
  shop-audit reconcile --format xlsx --merge-key composite`,
	RunE: runReconcile,
}

func init() {
	f := reconcileCmd.Flags()
	f.StringVar(&reconcileDir, "dir", "", "Workspace directory (local backend)")
	f.StringSliceVar(&reconcileStock, "stock", nil, "Stock export(s), in priority order")
	f.StringVar(&reconcileOrders, "orders", "", "Order lines export")
	f.StringVar(&reconcileRegister, "register", "", "Register sales export (optional)")
	f.StringVar(&reconcileFormat, "format", "", "Report format (csv, xlsx)")
	f.BoolVar(&reconcileStrict, "strict", false, "Fail when an item is missing from the stock catalog")
	f.StringVar(&reconcileMergeKey, "merge-key", "", "Ledger merge key (name, composite)")
	f.StringVar(&reconcileGrouping, "grouping", "", "Order grouping (group_all, adjacent)")
	f.BoolVar(&reconcileNoArchive, "no-archive", false, "Skip archiving even when the database is enabled")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	d, err := bootstrap()
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	applyReconcileFlags(cmd, d)

	svc, err := d.service()
	if err != nil {
		return err
	}

	if !reconcileNoArchive {
		repo, _, err := d.archive()
		if err != nil {
			return err
		}
		if repo != nil {
			svc.WithArchiver(repo)
		}
	}

	d.logger.Info("Starting reconciliation",
		zap.Strings("inputs", d.cfg.Workspace.Inputs()),
		zap.String("format", d.cfg.Workspace.Format),
	)

	result, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(result.ID, result.Duration, &result.Report.Summary, result.Outputs)
	return nil
}

func applyReconcileFlags(cmd *cobra.Command, d *deps) {
	f := cmd.Flags()
	ws := &d.cfg.Workspace
	rc := &d.cfg.Reconcile

	if f.Changed("dir") {
		ws.Dir = reconcileDir
	}
	if f.Changed("stock") {
		ws.StockFiles = reconcileStock
	}
	if f.Changed("orders") {
		ws.OrdersFile = reconcileOrders
	}
	if f.Changed("register") {
		ws.RegisterFile = reconcileRegister
	}
	if f.Changed("format") {
		ws.Format = reconcileFormat
	}
	if f.Changed("strict") && reconcileStrict {
		rc.LookupMode = string(reconcile.LookupStrict)
	}
	if f.Changed("merge-key") {
		rc.MergeKey = reconcileMergeKey
	}
	if f.Changed("grouping") {
		rc.OrderGrouping = reconcileGrouping
	}
}

func printSummary(id string, elapsed time.Duration, s *reconcile.Summary, outputs []string) {
	fmt.Println("\n=== Reconciliation Summary ===")
	fmt.Printf("Run:               %s (%s)\n", id, elapsed.Round(time.Millisecond))
	fmt.Printf("Stock records:     %d\n", s.StockRecords)
	fmt.Printf("Order lines:       %d\n", s.OrderLines)
	fmt.Printf("Register sales:    %d\n", s.RegisterSales)
	fmt.Printf("Orders:            %d\n", s.Orders)
	fmt.Printf("Ledger entries:    %d\n", s.LedgerEntries)
	fmt.Printf("Unresolved lines:  %d\n", s.UnresolvedLines)
	fmt.Printf("Item mismatches:   %d\n", s.ItemMismatches)
	fmt.Printf("Order mismatches:  %d\n", s.OrderMismatches)

	if len(s.UnresolvedItems) > 0 {
		fmt.Println("\nItems missing from the stock catalog:")
		for _, name := range s.UnresolvedItems {
			fmt.Printf("  - %s\n", name)
		}
	}

	if len(outputs) > 0 {
		fmt.Println("\nReports:")
		for _, out := range outputs {
			fmt.Printf("  %s\n", out)
		}
	}
}
