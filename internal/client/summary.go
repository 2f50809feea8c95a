// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/gh-secret-sync/models"
	"github.com/fatih/color"
)

// printPlan writes the plan before execution so non-interactive runs
// leave a record of what was about to change.
func (a *App) printPlan(plan models.SyncPlan) {
	fmt.Fprintf(a.out, "Plan: %d to create, %d to update, %d to delete\n",
		len(plan.Create), len(plan.Update), len(plan.Delete))
	for _, row := range plan.Rows() {
		fmt.Fprintf(a.out, "  %-7s %s\n", row.Status, row.Name)
	}
}

// printSummary writes one line per operation plus a totals line.
// Successful creates and updates are green, deletions and failures red,
// so a scan of the output immediately shows what changed and what broke.
func (a *App) printSummary(outcomes []models.OperationOutcome) {
	if len(outcomes) == 0 {
		return
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	var created, updated, deleted, failed int
	for _, o := range outcomes {
		switch o.Kind {
		case models.OperationCreated:
			created++
			fmt.Fprintf(a.out, "%s %s\n", green("created"), o.Name)
		case models.OperationUpdated:
			updated++
			fmt.Fprintf(a.out, "%s %s\n", green("updated"), o.Name)
		case models.OperationDeleted:
			deleted++
			fmt.Fprintf(a.out, "%s %s\n", red("deleted"), o.Name)
		case models.OperationFailed:
			failed++
			fmt.Fprintf(a.out, "%s  %s: %v\n", red("failed"), o.Name, o.Err)
		}
	}

	fmt.Fprintf(a.out, "\n%d created, %d updated, %d deleted, %d failed\n",
		created, updated, deleted, failed)
}
