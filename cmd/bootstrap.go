package cmd

import (
	"fmt"

	"shop-audit/core/config"
	"shop-audit/core/database"
	"shop-audit/core/logger"
	"shop-audit/core/reconcile"
	"shop-audit/core/storage"
	"shop-audit/core/workspace"
	"shop-audit/feature/archive"
	"shop-audit/feature/shopkeep"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps carries what every command builds from the configuration.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
}

func bootstrap() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &deps{cfg: cfg, logger: l}, nil
}

// store opens the workspace. The storage client is only created for the
// bucket backend.
func (d *deps) store() (workspace.Store, error) {
	var client storage.Client
	if d.cfg.Workspace.Backend == workspace.BackendBucket {
		c, err := storage.NewClient(d.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}

	store, err := workspace.New(d.cfg.Workspace, client, d.cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// database connects to the archive when it is enabled. A nil DB means
// archiving is off.
func (d *deps) database() (*gorm.DB, error) {
	if !d.cfg.Database.Enabled {
		return nil, nil
	}

	db, err := database.Connect(d.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	d.logger.Info("Connected to archive database", zap.String("driver", d.cfg.Database.Driver))
	return db, nil
}

// archive connects to and migrates the archive. It returns nil when archiving
// is disabled.
func (d *deps) archive() (*archive.Repository, *gorm.DB, error) {
	db, err := d.database()
	if err != nil || db == nil {
		return nil, nil, err
	}

	repo := archive.NewRepository(db, d.logger)
	if err := repo.Migrate(); err != nil {
		return nil, nil, err
	}
	return repo, db, nil
}

// service builds the reconciliation service over the workspace.
func (d *deps) service() (*shopkeep.Service, error) {
	opts, err := d.cfg.Reconcile.Options()
	if err != nil {
		return nil, fmt.Errorf("invalid reconcile settings: %w", err)
	}

	store, err := d.store()
	if err != nil {
		return nil, err
	}

	engine := reconcile.NewEngine(opts, d.logger)
	return shopkeep.NewService(store, d.cfg.Workspace, engine, d.logger)
}
