package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-audit/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 200

// ErrRunNotFound is returned when no run has the requested id.
var ErrRunNotFound = errors.New("archived run not found")

// Repository stores and reads archived runs.
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates or updates the archive tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate archive tables: %w", err)
	}
	return nil
}

// Archive stores a run and its ledgers in one transaction.
func (r *Repository) Archive(ctx context.Context, runID string, startedAt time.Time, report *reconcile.Report) error {
	run := NewRun(runID, startedAt, report)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&run).Error; err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}
		if len(run.Items) > 0 {
			if err := tx.CreateInBatches(&run.Items, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert items: %w", err)
			}
		}
		if len(run.Orders) > 0 {
			if err := tx.CreateInBatches(&run.Orders, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert orders: %w", err)
			}
		}
		if len(run.Totals) > 0 {
			if err := tx.CreateInBatches(&run.Totals, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert totals: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Run archived",
		zap.String("run_id", runID),
		zap.Int("items", len(run.Items)),
		zap.Int("orders", len(run.Orders)),
		zap.Int("totals", len(run.Totals)),
	)
	return nil
}

// ListRuns returns the most recent runs without their ledgers.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run with its ledgers in report order.
func (r *Repository) GetRun(ctx context.Context, id string) (*Run, error) {
	var run Run
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position") }

	err := r.db.WithContext(ctx).
		Preload("Items", byPosition).
		Preload("Orders", byPosition).
		Preload("Totals", byPosition).
		First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return &run, nil
}
