package checks

import (
	"context"

	"shop-audit/core/workspace"
)

// WorkspaceReport describes whether the workspace can be listed.
type WorkspaceReport struct {
	Location  string   `json:"location"`
	Reachable bool     `json:"reachable"`
	Files     []string `json:"files"`
	Error     string   `json:"error,omitempty"`
}

// CheckWorkspace lists the workspace to confirm it is reachable.
func CheckWorkspace(ctx context.Context, store workspace.Store) WorkspaceReport {
	report := WorkspaceReport{Location: store.Location(""), Files: []string{}}

	files, err := store.List(ctx)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.Reachable = true
	if files != nil {
		report.Files = files
	}
	return report
}
