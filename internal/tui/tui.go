// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive plan-review screen. Before
// anything is written remotely the operator sees every planned
// operation, can inspect individual entries, and must explicitly
// approve the plan.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/gh-secret-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the operator leaves the review screen
// without approving or rejecting the plan.
var ErrUserQuit = errors.New("cancelled by user")

type TUI struct{}

func New() *TUI {
	return &TUI{}
}

// ReviewPlan runs the full-screen review of plan and blocks until the
// operator decides. It returns true when the plan was approved, false
// when it was rejected, and ErrUserQuit when the screen was closed
// without a decision.
func (t *TUI) ReviewPlan(ctx context.Context, plan models.SyncPlan) (approved bool, err error) {
	model := newReviewModel(plan)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(reviewModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	return result.approved, nil
}
