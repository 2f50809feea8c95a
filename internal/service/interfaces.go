// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the reconciliation core: planning which
// operations bring the remote secret store in line with the declared
// list, and executing that plan through the transport adapter.
package service

import (
	"context"

	"github.com/MKhiriev/gh-secret-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// PlannerService computes a sync plan from the declared secrets and the
// pre-fetched remote name set. Planning is a pure in-memory comparison
// with no side effects.
type PlannerService interface {
	BuildSyncPlan(ctx context.Context, desired models.DesiredSecrets, remoteNames []string) (models.SyncPlan, error)
}

// ReconcileService drives a full run: fetch remote state, derive the
// plan, and apply it operation by operation.
//
// Planning and applying are separate calls so the caller can show the
// plan to an operator (or log it) before anything is written remotely.
type ReconcileService interface {
	// PlanSync lists the remote secret names and builds the plan that
	// would make the remote store match desired. Nothing is modified.
	PlanSync(ctx context.Context, desired models.DesiredSecrets) (models.SyncPlan, error)

	// ApplySyncPlan executes plan: deletions first, then sealed upserts,
	// each item isolated so one failure never aborts the rest. The
	// returned outcomes cover every operation in the plan in a stable
	// order (deletes, creates, updates). If any outcome failed, the
	// error wraps [ErrPartialFailure]; an error that is not
	// [ErrPartialFailure] means the run aborted before any item ran.
	ApplySyncPlan(ctx context.Context, plan models.SyncPlan) ([]models.OperationOutcome, error)
}
