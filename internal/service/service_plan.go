// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/gh-secret-sync/models"
)

// plannerService is the concrete implementation of PlannerService.
// It performs a purely in-memory comparison of the declared secrets and
// the remote name set; no storage layer or logger is required because
// the operation is stateless and produces no side effects.
type plannerService struct{}

// NewPlannerService constructs a PlannerService ready for use.
// Because BuildSyncPlan is a stateless, in-memory operation,
// no dependencies (adapter, config, logger) are needed.
func NewPlannerService() PlannerService {
	return &plannerService{}
}

// BuildSyncPlan implements PlannerService.
//
// It builds an O(1) lookup index from the remote names, then makes two
// linear passes to classify every name into exactly one action category:
//
//   - Pass 1 (over desired): names absent remotely become creates,
//     names present remotely become updates.
//   - Pass 2 (over remoteNames): names not declared become deletes.
//
// The create/update split is derived entirely from the remote name set
// fetched before planning; the remote API never reports which of the
// two an upsert performed. Input order is preserved within each
// category so plans are deterministic.
//
// ctx cancellation is checked at the start of each iteration so that
// callers can abort early when operating on large listings.
func (s *plannerService) BuildSyncPlan(
	ctx context.Context,
	desired models.DesiredSecrets,
	remoteNames []string,
) (models.SyncPlan, error) {
	var plan models.SyncPlan

	remoteIndex := make(map[string]struct{}, len(remoteNames))
	for _, name := range remoteNames {
		remoteIndex[name] = struct{}{}
	}

	desiredIndex := make(map[string]struct{}, len(desired))
	for _, d := range desired {
		desiredIndex[d.Name] = struct{}{}
	}

	// ── Pass 1: classify every declared secret ──────────────────────────────
	for _, d := range desired {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		if _, existsRemotely := remoteIndex[d.Name]; existsRemotely {
			plan.Update = append(plan.Update, d)
		} else {
			plan.Create = append(plan.Create, d)
		}
	}

	// ── Pass 2: find remote-only names (absent from the declared list) ──────
	for _, name := range remoteNames {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		if _, declared := desiredIndex[name]; !declared {
			plan.Delete = append(plan.Delete, name)
		}
	}

	return plan, nil
}
