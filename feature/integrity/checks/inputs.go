package checks

import (
	"context"
	"errors"
	"fmt"

	"shop-audit/core/tabular"
	"shop-audit/core/workspace"
	"shop-audit/feature/shopkeep"
)

const (
	StatusOK      = "ok"
	StatusMissing = "missing"
	StatusWarning = "warning"
	StatusError   = "error"
)

// FileReport is the result of checking one input export.
type FileReport struct {
	Role           string   `json:"role"`
	Required       bool     `json:"required"`
	Status         string   `json:"status"`
	Rows           int      `json:"rows"`
	MissingColumns []string `json:"missing_columns"`
	Error          string   `json:"error,omitempty"`
}

// InputsReport strictly types the result of an input check.
type InputsReport struct {
	Matched  bool                  `json:"matched"`
	Files    map[string]FileReport `json:"files"`
	Warnings []string              `json:"warnings"`
}

type input struct {
	name     string
	role     string
	profile  shopkeep.Profile
	required bool
}

// CheckInputs verifies that every configured export exists and carries the
// columns its profile requires. A missing register sales export is only a
// warning since the ledger can be built without it.
func CheckInputs(ctx context.Context, store workspace.Store, files workspace.Config) InputsReport {
	report := InputsReport{
		Matched:  true,
		Files:    make(map[string]FileReport),
		Warnings: []string{},
	}

	var inputs []input
	for _, name := range files.StockFiles {
		inputs = append(inputs, input{name: name, role: "stock", profile: shopkeep.StockProfile, required: true})
	}
	inputs = append(inputs, input{name: files.OrdersFile, role: "orders", profile: shopkeep.OrderProfile, required: true})
	if files.RegisterFile != "" {
		inputs = append(inputs, input{name: files.RegisterFile, role: "register", profile: shopkeep.RegisterProfile})
	}

	for _, in := range inputs {
		fr := checkInput(ctx, store, in)
		switch fr.Status {
		case StatusOK:
		case StatusWarning:
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s: optional %s export not found", in.name, in.role))
		default:
			report.Matched = false
		}
		report.Files[in.name] = fr
	}

	return report
}

func checkInput(ctx context.Context, store workspace.Store, in input) FileReport {
	fr := FileReport{Role: in.role, Required: in.required, Status: StatusOK, MissingColumns: []string{}}

	rc, err := store.Open(ctx, in.name)
	if errors.Is(err, workspace.ErrNotExist) {
		fr.Status = StatusMissing
		if !in.required {
			fr.Status = StatusWarning
		}
		return fr
	}
	if err != nil {
		fr.Status = StatusError
		fr.Error = err.Error()
		return fr
	}
	defer rc.Close()

	table, err := tabular.Read(rc)
	if err != nil {
		fr.Status = StatusError
		fr.Error = err.Error()
		return fr
	}

	fr.Rows = table.Len()
	if missing := in.profile.Missing(table); len(missing) > 0 {
		fr.MissingColumns = missing
		fr.Status = StatusError
	}
	return fr
}
