package integrity

import (
	"context"

	"shop-audit/core/workspace"
	"shop-audit/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report combines every integrity check.
type Report struct {
	Workspace checks.WorkspaceReport `json:"workspace"`
	Inputs    checks.InputsReport    `json:"inputs"`
	Archive   *checks.SchemaReport   `json:"archive,omitempty"`
	Healthy   bool                   `json:"healthy"`
}

// Service handles integrity checks.
type Service struct {
	store  workspace.Store
	files  workspace.Config
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil when archiving is
// disabled, in which case the archive check is skipped.
func NewService(store workspace.Store, files workspace.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		files:  files,
		db:     db,
		logger: logger,
	}
}

// CheckWorkspace reports whether the workspace can be listed.
func (s *Service) CheckWorkspace(ctx context.Context) checks.WorkspaceReport {
	return checks.CheckWorkspace(ctx, s.store)
}

// CheckInputs verifies the configured exports and their columns.
func (s *Service) CheckInputs(ctx context.Context) checks.InputsReport {
	return checks.CheckInputs(ctx, s.store, s.files)
}

// CheckArchive compares the archive tables against their models.
func (s *Service) CheckArchive() (*checks.SchemaReport, error) {
	return checks.CheckArchiveSchema(s.db)
}

// CheckAll runs every check. A failing archive inspection marks the report
// unhealthy but does not abort the other checks.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{
		Workspace: s.CheckWorkspace(ctx),
		Inputs:    s.CheckInputs(ctx),
	}
	report.Healthy = report.Workspace.Reachable && report.Inputs.Matched

	if s.db != nil {
		archive, err := s.CheckArchive()
		if err != nil {
			s.logger.Error("Archive schema check failed", zap.Error(err))
			archive = &checks.SchemaReport{Errors: []string{err.Error()}}
		}
		report.Archive = archive
		report.Healthy = report.Healthy && archive.Matched
	}

	if !report.Healthy {
		s.logger.Warn("Integrity check found problems",
			zap.Bool("workspace_reachable", report.Workspace.Reachable),
			zap.Bool("inputs_matched", report.Inputs.Matched),
		)
	}

	return report
}
