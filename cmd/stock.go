package cmd

import (
	"context"
	"errors"
	"fmt"

	"shop-audit/core/reconcile"

	"github.com/spf13/cobra"
)

var (
	lookupSKU  string
	lookupName string
)

// stockCmd groups the stock catalog commands.
var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Inspect the stock catalog",
}

// stockLookupCmd resolves one item against the merged catalog.
var stockLookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find an item by SKU or name",
	Long: `Lookup resolves an item against the merged stock catalog and prints its
fields. The earliest matching record across all stock files wins.

Examples:
  shop-audit stock lookup --sku A1
  shop-audit stock lookup --name "Widget"`,
	RunE: runStockLookup,
}

func init() {
	stockLookupCmd.Flags().StringVar(&lookupSKU, "sku", "", "Item SKU")
	stockLookupCmd.Flags().StringVar(&lookupName, "name", "", "Item name")

	stockCmd.AddCommand(stockLookupCmd)
	RootCmd.AddCommand(stockCmd)
}

var stockFields = []reconcile.Field{
	reconcile.FieldSKU,
	reconcile.FieldName,
	reconcile.FieldDepartment,
	reconcile.FieldCategory,
	reconcile.FieldPrice,
	reconcile.FieldCost,
	reconcile.FieldQuantityOnHand,
	reconcile.FieldSupplier,
}

func runStockLookup(cmd *cobra.Command, args []string) error {
	if lookupSKU == "" && lookupName == "" {
		return errors.New("one of --sku or --name is required")
	}

	d, err := bootstrap()
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	svc, err := d.service()
	if err != nil {
		return err
	}

	rec, err := svc.Lookup(context.Background(), lookupSKU, lookupName)
	if err != nil {
		return err
	}

	for _, field := range stockFields {
		v, _ := rec.Value(field)
		fmt.Printf("%-18s %s\n", field+":", v)
	}
	return nil
}
