package integrity_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"shop-audit/core/database"
	"shop-audit/core/workspace"
	"shop-audit/feature/archive"
	"shop-audit/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func files() workspace.Config {
	return workspace.Config{
		StockFiles:   []string{"stock.csv"},
		OrdersFile:   "orders.csv",
		RegisterFile: "register_sales.csv",
	}
}

func healthyStore(t *testing.T) workspace.Store {
	t.Helper()
	dir := t.TempDir()
	contents := map[string]string{
		"stock.csv":  "SKU,Name,Price\nA1,Widget,10.00\n",
		"orders.csv": "order_number,sku,name,quantity,total,order_subtotal,order_total\n1001,A1,Widget,1,10.00,10.00,10.00\n",
	}
	for name, body := range contents {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return workspace.NewDirStore(dir)
}

func migratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(archive.Models()...))
	return db
}

func TestService_CheckAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Healthy Without Archive", func(t *testing.T) {
		svc := integrity.NewService(healthyStore(t), files(), nil, zap.NewNop())

		report := svc.CheckAll(ctx)
		assert.True(t, report.Healthy)
		assert.True(t, report.Workspace.Reachable)
		assert.Nil(t, report.Archive)
		assert.Len(t, report.Inputs.Warnings, 1)
	})

	t.Run("Healthy With Archive", func(t *testing.T) {
		svc := integrity.NewService(healthyStore(t), files(), migratedDB(t), zap.NewNop())

		report := svc.CheckAll(ctx)
		require.NotNil(t, report.Archive)
		assert.True(t, report.Archive.Matched)
		assert.True(t, report.Healthy)
	})

	t.Run("Unmigrated Archive", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		svc := integrity.NewService(healthyStore(t), files(), db, zap.NewNop())

		report := svc.CheckAll(ctx)
		assert.False(t, report.Healthy)
		assert.False(t, report.Archive.Matched)
	})

	t.Run("Empty Workspace", func(t *testing.T) {
		svc := integrity.NewService(workspace.NewDirStore(t.TempDir()), files(), nil, zap.NewNop())

		report := svc.CheckAll(ctx)
		assert.True(t, report.Workspace.Reachable)
		assert.False(t, report.Inputs.Matched)
		assert.False(t, report.Healthy)
	})
}

func TestService_CheckArchiveDisabled(t *testing.T) {
	svc := integrity.NewService(healthyStore(t), files(), nil, zap.NewNop())
	_, err := svc.CheckArchive()
	assert.Error(t, err)
}

func TestFeature(t *testing.T) {
	svc := integrity.NewService(healthyStore(t), files(), nil, zap.NewNop())
	f := integrity.NewFeature(svc)
	assert.Equal(t, "integrity", f.Name())
	assert.True(t, f.IsEnabled())

	app := fiber.New()
	require.NoError(t, f.Load(app))

	t.Run("All", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var report integrity.Report
		data, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(data, &report))
		assert.True(t, report.Healthy)
	})

	t.Run("Workspace", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/workspace", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Inputs", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/inputs", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		data, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		assert.Equal(t, true, body["matched"])
	})

	t.Run("Archive Disabled", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/archive", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
