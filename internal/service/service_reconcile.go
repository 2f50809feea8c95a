// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gh-secret-sync/internal/adapter"
	"github.com/MKhiriev/gh-secret-sync/internal/crypto"
	"github.com/MKhiriev/gh-secret-sync/internal/logger"
	"github.com/MKhiriev/gh-secret-sync/internal/workers"
	"github.com/MKhiriev/gh-secret-sync/models"
	"github.com/google/uuid"
)

type reconcileService struct {
	adapter     adapter.RepoSecretsAdapter
	sealer      crypto.SealerService
	planner     PlannerService
	concurrency int
	log         *logger.Logger
}

// NewReconcileService wires the reconciliation core to a transport
// adapter and a sealer. concurrency caps the number of in-flight remote
// calls; a non-positive value falls back to the worker pool default.
func NewReconcileService(
	repoAdapter adapter.RepoSecretsAdapter,
	sealer crypto.SealerService,
	concurrency int,
	log *logger.Logger,
) ReconcileService {
	return &reconcileService{
		adapter:     repoAdapter,
		sealer:      sealer,
		planner:     NewPlannerService(),
		concurrency: concurrency,
		log:         log,
	}
}

// PlanSync implements ReconcileService.
func (s *reconcileService) PlanSync(ctx context.Context, desired models.DesiredSecrets) (models.SyncPlan, error) {
	remoteNames, err := s.adapter.ListSecretNames(ctx)
	if err != nil {
		return models.SyncPlan{}, fmt.Errorf("list remote secret names: %w", err)
	}

	plan, err := s.planner.BuildSyncPlan(ctx, desired, remoteNames)
	if err != nil {
		return models.SyncPlan{}, fmt.Errorf("build sync plan: %w", err)
	}

	s.log.Info().
		Int("create", len(plan.Create)).
		Int("update", len(plan.Update)).
		Int("delete", len(plan.Delete)).
		Msg("sync plan built")

	return plan, nil
}

// ApplySyncPlan implements ReconcileService.
//
// The public key is fetched once and every value of the run is sealed
// against it. Deletions are dispatched before upserts so a run that
// renames a secret never holds both names at once longer than
// necessary. Operations within each phase run concurrently on a bounded
// pool; each writes its outcome to a fixed slot, so the returned slice
// is always ordered deletes, creates, updates regardless of scheduling.
func (s *reconcileService) ApplySyncPlan(ctx context.Context, plan models.SyncPlan) ([]models.OperationOutcome, error) {
	if plan.Empty() {
		return nil, nil
	}

	runLog := logger.Logger{Logger: s.log.With().Str("run_id", uuid.NewString()).Logger()}

	key, err := s.adapter.GetPublicKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("get repository public key: %w", err)
	}
	runLog.Debug().Str("key_id", key.KeyID).Msg("fetched repository public key")

	total := len(plan.Delete) + len(plan.Create) + len(plan.Update)
	outcomes := make([]models.OperationOutcome, total)

	pool := workers.NewPool(s.concurrency)
	for i, name := range plan.Delete {
		i, name := i, name // pre-Go1.22 loop variable capture
		pool.Submit(func() {
			outcomes[i] = s.deleteSecret(ctx, runLog, name)
		})
	}
	pool.Wait()

	pool = workers.NewPool(s.concurrency)
	offset := len(plan.Delete)
	for i, secret := range plan.Create {
		i, secret := i, secret // pre-Go1.22 loop variable capture
		pool.Submit(func() {
			outcomes[offset+i] = s.upsertSecret(ctx, runLog, secret, key, models.OperationCreated)
		})
	}
	offset += len(plan.Create)
	for i, secret := range plan.Update {
		i, secret := i, secret // pre-Go1.22 loop variable capture
		pool.Submit(func() {
			outcomes[offset+i] = s.upsertSecret(ctx, runLog, secret, key, models.OperationUpdated)
		})
	}
	pool.Wait()

	var failed int
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return outcomes, fmt.Errorf("%w: %d of %d", ErrPartialFailure, failed, total)
	}

	runLog.Info().Int("operations", total).Msg("sync plan applied")
	return outcomes, nil
}

func (s *reconcileService) deleteSecret(ctx context.Context, log logger.Logger, name string) models.OperationOutcome {
	if err := s.adapter.DeleteSecret(ctx, name); err != nil {
		log.Error().Err(err).Str("secret", name).Msg("delete failed")
		return models.OperationOutcome{Name: name, Kind: models.OperationFailed, Err: err}
	}

	log.Info().Str("secret", name).Msg("secret deleted")
	return models.OperationOutcome{Name: name, Kind: models.OperationDeleted}
}

func (s *reconcileService) upsertSecret(
	ctx context.Context,
	log logger.Logger,
	secret models.DesiredSecret,
	key models.RepoPublicKey,
	kind models.OperationKind,
) models.OperationOutcome {
	sealed, err := s.sealer.Seal([]byte(secret.Value), key.Key)
	if err != nil {
		log.Error().Err(err).Str("secret", secret.Name).Msg("seal failed")
		return models.OperationOutcome{Name: secret.Name, Kind: models.OperationFailed, Err: fmt.Errorf("seal secret %s: %w", secret.Name, err)}
	}

	if err = s.adapter.UpsertSecret(ctx, secret.Name, sealed, key.KeyID); err != nil {
		log.Error().Err(err).Str("secret", secret.Name).Msg("upsert failed")
		return models.OperationOutcome{Name: secret.Name, Kind: models.OperationFailed, Err: err}
	}

	log.Info().Str("secret", secret.Name).Str("kind", string(kind)).Msg("secret upserted")
	return models.OperationOutcome{Name: secret.Name, Kind: kind}
}
