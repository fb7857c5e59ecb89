package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-audit/core/loader"
	"shop-audit/core/logger"
	"shop-audit/core/metrics"
	"shop-audit/core/middleware/auth"
	"shop-audit/core/middleware/rayid"
	"shop-audit/feature/archive"
	"shop-audit/feature/integrity"
	"shop-audit/feature/shopkeep"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		d, err := bootstrap()
		if err != nil {
			log.Fatalf("%v", err)
		}
		logg := d.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Archive (Optional)
		repo, db, err := d.archive()
		if err != nil {
			logg.Warn("Optional archive database unavailable", zap.Error(err))
		}

		// 3. Reconciliation service over the workspace
		svc, err := d.service()
		if err != nil {
			logg.Fatal("Failed to create reconciliation service", zap.Error(err))
		}
		recorder := metrics.New(prometheus.DefaultRegisterer)
		svc.WithMetrics(recorder)
		if repo != nil {
			svc.WithArchiver(repo)
		}
		cache := shopkeep.NewReportCache(svc.Compute, d.cfg.Server.CacheTTL())

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 4. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(shopkeep.NewFeature(svc, cache))
		mgr.Register(integrity.NewFeature(integrity.NewService(svc.Store(), svc.Files(), db, logg)))
		mgr.Register(archive.NewFeature(repo))

		// RayID must be first to trace everything.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
			} else {
				l.Info("Request completed", fields...)
			}
			return err
		})

		app.Use(recorder.Middleware())

		// Scrapers do not carry the API key.
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
		app.Use(auth.New(auth.Config{ApiKey: d.cfg.Server.ApiKey, Skip: []string{"/metrics"}}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server", zap.String("port", d.cfg.Server.Port))
			if err := app.Listen(d.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
