package cmd

import (
	"context"
	"fmt"
	"sort"

	"shop-audit/feature/integrity"

	"github.com/spf13/cobra"
)

// integrityCmd checks the workspace, the input exports and the archive schema.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check that a reconciliation can run",
	Long: `Integrity verifies that the workspace is reachable, that every input export
exists with its required columns and, when archiving is enabled, that the
archive tables match their models. It exits non-zero when a check fails.`,
	RunE: runIntegrity,
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrity(cmd *cobra.Command, args []string) error {
	d, err := bootstrap()
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	store, err := d.store()
	if err != nil {
		return err
	}
	db, err := d.database()
	if err != nil {
		return err
	}

	svc := integrity.NewService(store, d.cfg.Workspace, db, d.logger)
	report := svc.CheckAll(context.Background())

	printIntegrity(report)
	if !report.Healthy {
		return fmt.Errorf("integrity check failed")
	}
	return nil
}

func printIntegrity(report *integrity.Report) {
	fmt.Println("\n=== Workspace ===")
	if report.Workspace.Reachable {
		fmt.Printf("%s: reachable, %d files\n", report.Workspace.Location, len(report.Workspace.Files))
	} else {
		fmt.Printf("%s: unreachable (%s)\n", report.Workspace.Location, report.Workspace.Error)
	}

	fmt.Println("\n=== Inputs ===")
	names := make([]string, 0, len(report.Inputs.Files))
	for name := range report.Inputs.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fr := report.Inputs.Files[name]
		fmt.Printf("%-28s %-8s %-8s rows=%d", name, fr.Role, fr.Status, fr.Rows)
		if len(fr.MissingColumns) > 0 {
			fmt.Printf(" missing=%v", fr.MissingColumns)
		}
		if fr.Error != "" {
			fmt.Printf(" error=%s", fr.Error)
		}
		fmt.Println()
	}
	for _, w := range report.Inputs.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	if report.Archive != nil {
		fmt.Println("\n=== Archive ===")
		tables := make([]string, 0, len(report.Archive.Tables))
		for name := range report.Archive.Tables {
			tables = append(tables, name)
		}
		sort.Strings(tables)
		for _, name := range tables {
			tbl := report.Archive.Tables[name]
			fmt.Printf("%-16s %s\n", name, tbl.Status)
			for _, col := range tbl.MissingColumns {
				fmt.Printf("  missing column %s\n", col)
			}
			for _, m := range tbl.TypeMismatches {
				fmt.Printf("  %s\n", m)
			}
		}
		for _, e := range report.Archive.Errors {
			fmt.Printf("error: %s\n", e)
		}
	}

	fmt.Printf("\nHealthy: %t\n", report.Healthy)
}
