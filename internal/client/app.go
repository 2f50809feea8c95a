// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/gh-secret-sync/internal/config"
	"github.com/MKhiriev/gh-secret-sync/internal/logger"
	"github.com/MKhiriev/gh-secret-sync/internal/service"
	"github.com/MKhiriev/gh-secret-sync/internal/tui"
	"github.com/MKhiriev/gh-secret-sync/internal/validators"
)

type App struct {
	cfg      *config.StructuredConfig
	services *service.Services
	ui       *tui.TUI
	log      *logger.Logger
	out      io.Writer
}

func NewApp(cfg *config.StructuredConfig, services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cfg == nil || services == nil {
		return nil, errors.New("nil config or services")
	}

	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		log:      log,
		out:      os.Stdout,
	}, nil
}

// Run implements Client. It parses the declared list, builds the plan,
// lets the operator review it (unless running non-interactively),
// applies it, and prints the per-secret outcome summary. A returned
// error means the process should exit non-zero; that includes runs in
// which only some operations failed.
func (a *App) Run() error {
	ctx := context.Background()

	raw, err := a.readSecretsSource()
	if err != nil {
		return err
	}

	desired, err := validators.ParseDesiredSecrets(raw)
	if err != nil {
		return fmt.Errorf("parse declared secrets: %w", err)
	}
	a.log.Info().Int("declared", len(desired)).Msg("declared secrets parsed")

	plan, err := a.services.Reconciler.PlanSync(ctx, desired)
	if err != nil {
		return fmt.Errorf("plan sync: %w", err)
	}

	if plan.Empty() {
		fmt.Fprintln(a.out, "Nothing to do: remote store already matches the declared list.")
		return nil
	}

	if a.cfg.App.NonInteractive {
		a.printPlan(plan)
	} else {
		approved, reviewErr := a.ui.ReviewPlan(ctx, plan)
		if errors.Is(reviewErr, tui.ErrUserQuit) || (reviewErr == nil && !approved) {
			fmt.Fprintln(a.out, "Sync cancelled, nothing was changed.")
			return nil
		}
		if reviewErr != nil {
			return fmt.Errorf("review plan: %w", reviewErr)
		}
	}

	outcomes, applyErr := a.services.Reconciler.ApplySyncPlan(ctx, plan)
	a.printSummary(outcomes)

	if applyErr != nil {
		return fmt.Errorf("apply sync plan: %w", applyErr)
	}
	return nil
}

// readSecretsSource returns the raw JSON of the declared list, either
// inline from configuration or from the configured file. Validation
// guarantees exactly one of the two sources is set.
func (a *App) readSecretsSource() (string, error) {
	if a.cfg.GitHub.SecretsJSON != "" {
		return a.cfg.GitHub.SecretsJSON, nil
	}

	data, err := os.ReadFile(a.cfg.GitHub.SecretsFile)
	if err != nil {
		return "", fmt.Errorf("read secrets file %s: %w", a.cfg.GitHub.SecretsFile, err)
	}
	return string(data), nil
}
