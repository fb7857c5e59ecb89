package shopkeep

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"shop-audit/core/metrics"
	"shop-audit/core/reconcile"
	"shop-audit/core/tabular"
	"shop-audit/core/workspace"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Archiver persists a finished run.
type Archiver interface {
	Archive(ctx context.Context, runID string, startedAt time.Time, report *reconcile.Report) error
}

// Result is one reconciliation run.
type Result struct {
	ID        string            `json:"id"`
	StartedAt time.Time         `json:"started_at"`
	Duration  time.Duration     `json:"duration"`
	Report    *reconcile.Report `json:"report"`
	// Outputs lists the report locations written by Run.
	Outputs []string `json:"outputs,omitempty"`
}

// Service runs reconciliations over a workspace.
type Service struct {
	store    workspace.Store
	files    workspace.Config
	format   tabular.Format
	engine   *reconcile.Engine
	logger   *zap.Logger
	recorder *metrics.Recorder
	archiver Archiver
}

// NewService creates a service reading and writing the files named by files.
func NewService(store workspace.Store, files workspace.Config, engine *reconcile.Engine, logger *zap.Logger) (*Service, error) {
	format, err := tabular.ParseFormat(files.Format)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		files:  files,
		format: format,
		engine: engine,
		logger: logger,
	}, nil
}

// WithMetrics counts every computed run on rec.
func (s *Service) WithMetrics(rec *metrics.Recorder) *Service {
	s.recorder = rec
	return s
}

// WithArchiver hands every run written by Run to a.
func (s *Service) WithArchiver(a Archiver) *Service {
	s.archiver = a
	return s
}

// Store returns the workspace the service reads from.
func (s *Service) Store() workspace.Store {
	return s.store
}

// Files returns the workspace layout.
func (s *Service) Files() workspace.Config {
	return s.files
}

// Compute loads the inputs and reconciles them without writing anything.
func (s *Service) Compute(ctx context.Context) (*Result, error) {
	started := time.Now()
	res := &Result{ID: uuid.NewString(), StartedAt: started}

	report, err := s.compute(ctx)
	res.Duration = time.Since(started)
	if s.recorder != nil {
		var summary *reconcile.Summary
		if report != nil {
			summary = &report.Summary
		}
		s.recorder.RecordRun(summary, res.Duration)
	}
	if err != nil {
		s.logger.Error("Reconciliation failed", zap.String("run_id", res.ID), zap.Error(err))
		return nil, err
	}

	res.Report = report
	return res, nil
}

func (s *Service) compute(ctx context.Context) (*reconcile.Report, error) {
	in, err := s.LoadInputs(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Run(in)
}

// Run computes a reconciliation, writes the three reports and archives the run.
// An archive failure is logged and does not fail the run.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	res, err := s.Compute(ctx)
	if err != nil {
		return nil, err
	}

	outputs, err := s.Emit(ctx, res.Report)
	if err != nil {
		return nil, err
	}
	res.Outputs = outputs

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, res.ID, res.StartedAt, res.Report); err != nil {
			s.logger.Warn("Failed to archive run", zap.String("run_id", res.ID), zap.Error(err))
		}
	}

	s.logger.Info("Reports written",
		zap.String("run_id", res.ID),
		zap.Strings("outputs", outputs),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

// Emit writes the item, order and totals reports and returns their locations.
func (s *Service) Emit(ctx context.Context, report *reconcile.Report) ([]string, error) {
	outputs := []struct {
		name  string
		sheet tabular.Sheet
	}{
		{s.files.ItemReport, ItemSheet(report.Items)},
		{s.files.OrderReport, OrderSheet(report.Orders)},
		{s.files.TotalsReport, TotalsSheet(report.Totals)},
	}

	var written []string
	for _, out := range outputs {
		name := workspace.ReportFile(out.name, string(s.format))
		var buf bytes.Buffer
		if err := out.sheet.Write(&buf, s.format); err != nil {
			return written, fmt.Errorf("failed to render %s: %w", name, err)
		}
		if err := s.store.Save(ctx, name, buf.Bytes(), s.format.ContentType()); err != nil {
			return written, err
		}
		written = append(written, s.store.Location(name))
	}
	return written, nil
}

// LoadInputs reads every configured export. A missing register sales export
// is not an error; the ledger then holds e-commerce sales only.
func (s *Service) LoadInputs(ctx context.Context) (reconcile.Inputs, error) {
	var in reconcile.Inputs

	stock, err := s.LoadStock(ctx)
	if err != nil {
		return in, err
	}
	in.Stock = stock

	t, err := s.readTable(ctx, s.files.OrdersFile)
	if err != nil {
		return in, err
	}
	if in.OrderLines, err = DecodeOrderLines(t, s.files.OrdersFile); err != nil {
		return in, err
	}

	if s.files.RegisterFile != "" {
		t, err := s.readTable(ctx, s.files.RegisterFile)
		switch {
		case errors.Is(err, workspace.ErrNotExist):
			s.logger.Info("No register sales export, merging e-commerce sales only", zap.String("file", s.files.RegisterFile))
		case err != nil:
			return in, err
		default:
			if in.RegisterSales, err = DecodeRegisterSales(t, s.files.RegisterFile); err != nil {
				return in, err
			}
		}
	}

	s.logger.Debug("Inputs loaded",
		zap.Int("stock_sources", len(in.Stock)),
		zap.Int("order_lines", len(in.OrderLines)),
		zap.Int("register_sales", len(in.RegisterSales)),
	)
	return in, nil
}

// LoadStock reads every stock export in configured order.
func (s *Service) LoadStock(ctx context.Context) ([][]reconcile.StockRecord, error) {
	if len(s.files.StockFiles) == 0 {
		return nil, errors.New("no stock files configured")
	}
	sources := make([][]reconcile.StockRecord, 0, len(s.files.StockFiles))
	for _, name := range s.files.StockFiles {
		t, err := s.readTable(ctx, name)
		if err != nil {
			return nil, err
		}
		records, err := DecodeStock(t, name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, records)
	}
	return sources, nil
}

// Lookup resolves one item strictly against the stock catalog.
func (s *Service) Lookup(ctx context.Context, sku, name string) (reconcile.StockRecord, error) {
	stock, err := s.LoadStock(ctx)
	if err != nil {
		return reconcile.StockRecord{}, err
	}
	return reconcile.NewStockIndex(stock...).Find(sku, name)
}

func (s *Service) readTable(ctx context.Context, name string) (*tabular.Table, error) {
	rc, err := s.store.Open(ctx, name)
	if err != nil {
		return nil, &SourceReadError{Source: s.store.Location(name), Err: err}
	}
	defer rc.Close()

	t, err := tabular.Read(rc)
	if err != nil {
		return nil, &SourceReadError{Source: s.store.Location(name), Err: err}
	}
	return t, nil
}
