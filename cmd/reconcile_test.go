package cmd

import (
	"testing"

	"shop-audit/core/config"
	"shop-audit/core/reconcile"
	"shop-audit/core/workspace"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReconcileCmd() *cobra.Command {
	c := &cobra.Command{Use: "reconcile"}
	c.Flags().AddFlagSet(reconcileCmd.Flags())
	return c
}

func TestApplyReconcileFlags(t *testing.T) {
	d := &deps{
		cfg: &config.Config{
			Workspace: workspace.Config{
				Dir:          ".",
				StockFiles:   []string{"stock.csv"},
				OrdersFile:   "orders.csv",
				RegisterFile: "register_sales.csv",
				Format:       "csv",
			},
			Reconcile: reconcile.Config{LookupMode: "tolerant", MergeKey: "name"},
		},
		logger: zap.NewNop(),
	}

	c := newReconcileCmd()
	require.NoError(t, c.Flags().Parse([]string{
		"--dir", "/data/may",
		"--stock", "stock.csv,legacy.csv",
		"--strict",
		"--merge-key", "composite",
	}))
	t.Cleanup(func() {
		for _, name := range []string{"dir", "stock", "strict", "merge-key"} {
			c.Flags().Lookup(name).Changed = false
		}
		reconcileDir, reconcileStock, reconcileStrict, reconcileMergeKey = "", nil, false, ""
	})

	applyReconcileFlags(c, d)

	ws := d.cfg.Workspace
	assert.Equal(t, "/data/may", ws.Dir)
	assert.Equal(t, []string{"stock.csv", "legacy.csv"}, ws.StockFiles)
	assert.Equal(t, "orders.csv", ws.OrdersFile)
	assert.Equal(t, "register_sales.csv", ws.RegisterFile)
	assert.Equal(t, "csv", ws.Format)

	opts, err := d.cfg.Reconcile.Options()
	require.NoError(t, err)
	assert.Equal(t, reconcile.LookupStrict, opts.LookupMode)
	assert.Equal(t, reconcile.MergeComposite, opts.MergeKey)
}
