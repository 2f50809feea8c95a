// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/gh-secret-sync/internal/logger"
	"github.com/MKhiriev/gh-secret-sync/internal/mock"
	"github.com/MKhiriev/gh-secret-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubPlanner is a trivial PlannerService stand-in; no mockgen needed.
type stubPlanner struct {
	plan models.SyncPlan
	err  error
}

func (s *stubPlanner) BuildSyncPlan(_ context.Context, _ models.DesiredSecrets, _ []string) (models.SyncPlan, error) {
	return s.plan, s.err
}

// newTestReconcileSvc builds a reconcileService over gomock doubles with
// single-worker concurrency so phase-internal order is deterministic.
func newTestReconcileSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (*reconcileService, *mock.MockRepoSecretsAdapter, *mock.MockSealerService) {
	t.Helper()
	mockAdapter := mock.NewMockRepoSecretsAdapter(ctrl)
	mockSealer := mock.NewMockSealerService(ctrl)

	svc := NewReconcileService(mockAdapter, mockSealer, 1, logger.Nop()).(*reconcileService)

	return svc, mockAdapter, mockSealer
}

var testKey = models.RepoPublicKey{KeyID: "key-1", Key: "cHVibGljLWtleQ=="}

// ── PlanSync ─────────────────────────────────────────────────────────────────

func TestReconcileService_PlanSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestReconcileSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListSecretNames(ctx).Return([]string{"B", "C"}, nil)

	desired := models.DesiredSecrets{ds("A", "va"), ds("B", "vb")}
	plan, err := svc.PlanSync(ctx, desired)

	require.NoError(t, err)
	assert.Equal(t, models.SyncPlan{
		Create: []models.DesiredSecret{ds("A", "va")},
		Update: []models.DesiredSecret{ds("B", "vb")},
		Delete: []string{"C"},
	}, plan)
}

func TestReconcileService_PlanSync_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestReconcileSvc(t, ctrl)
	ctx := context.Background()

	listErr := errors.New("boom")
	mockAdapter.EXPECT().ListSecretNames(ctx).Return(nil, listErr)

	_, err := svc.PlanSync(ctx, models.DesiredSecrets{ds("A", "va")})

	require.Error(t, err)
	assert.ErrorIs(t, err, listErr)
}

func TestReconcileService_PlanSync_PlannerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestReconcileSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListSecretNames(ctx).Return([]string{"A"}, nil)

	planErr := errors.New("plan failed")
	svc.planner = &stubPlanner{err: planErr}

	_, err := svc.PlanSync(ctx, models.DesiredSecrets{ds("A", "va")})

	require.Error(t, err)
	assert.ErrorIs(t, err, planErr)
}

// ── ApplySyncPlan ────────────────────────────────────────────────────────────

func TestReconcileService_ApplySyncPlan_EmptyPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No adapter or sealer calls are expected for an empty plan.
	svc, _, _ := newTestReconcileSvc(t, ctrl)

	outcomes, err := svc.ApplySyncPlan(context.Background(), models.SyncPlan{})

	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestReconcileService_ApplySyncPlan_Converges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSealer := newTestReconcileSvc(t, ctrl)
	ctx := context.Background()

	plan := models.SyncPlan{
		Create: []models.DesiredSecret{ds("A", "va")},
		Update: []models.DesiredSecret{ds("B", "vb")},
		Delete: []string{"C"},
	}

	keyCall := mockAdapter.EXPECT().GetPublicKey(ctx).Return(testKey, nil)
	delCall := mockAdapter.EXPECT().DeleteSecret(ctx, "C").Return(nil).After(keyCall)
	mockSealer.EXPECT().Seal([]byte("va"), testKey.Key).Return("sealed-a", nil)
	mockSealer.EXPECT().Seal([]byte("vb"), testKey.Key).Return("sealed-b", nil)
	mockAdapter.EXPECT().UpsertSecret(ctx, "A", "sealed-a", testKey.KeyID).Return(nil).After(delCall)
	mockAdapter.EXPECT().UpsertSecret(ctx, "B", "sealed-b", testKey.KeyID).Return(nil).After(delCall)

	outcomes, err := svc.ApplySyncPlan(ctx, plan)

	require.NoError(t, err)
	assert.Equal(t, []models.OperationOutcome{
		{Name: "C", Kind: models.OperationDeleted},
		{Name: "A", Kind: models.OperationCreated},
		{Name: "B", Kind: models.OperationUpdated},
	}, outcomes)
}

func TestReconcileService_ApplySyncPlan_EmptyDesiredDeletesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestReconcileSvc(t, ctrl)
	ctx := context.Background()

	plan := models.SyncPlan{Delete: []string{"X", "Y"}}

	mockAdapter.EXPECT().GetPublicKey(ctx).Return(testKey, nil)
	mockAdapter.EXPECT().DeleteSecret(ctx, "X").Return(nil)
	mockAdapter.EXPECT().DeleteSecret(ctx, "Y").Return(nil)

	outcomes, err := svc.ApplySyncPlan(ctx, plan)

	require.NoError(t, err)
	assert.Equal(t, []models.OperationOutcome{
		{Name: "X", Kind: models.OperationDeleted},
		{Name: "Y", Kind: models.OperationDeleted},
	}, outcomes)
}

func TestReconcileService_ApplySyncPlan_PublicKeyErrorAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestReconcileSvc(t, ctrl)
	ctx := context.Background()

	keyErr := errors.New("401 unauthorized")
	mockAdapter.EXPECT().GetPublicKey(ctx).Return(models.RepoPublicKey{}, keyErr)
	// No delete or upsert may be attempted after a fatal key fetch.

	outcomes, err := svc.ApplySyncPlan(ctx, models.SyncPlan{Delete: []string{"X"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, keyErr)
	assert.NotErrorIs(t, err, ErrPartialFailure)
	assert.Nil(t, outcomes)
}

func TestReconcileService_ApplySyncPlan_PartialFailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSealer := newTestReconcileSvc(t, ctrl)
	ctx := context.Background()

	plan := models.SyncPlan{
		Create: []models.DesiredSecret{ds("BAD", "v1"), ds("GOOD", "v2")},
	}

	upsertErr := errors.New("422 validation rejected")
	mockAdapter.EXPECT().GetPublicKey(ctx).Return(testKey, nil)
	mockSealer.EXPECT().Seal([]byte("v1"), testKey.Key).Return("sealed-bad", nil)
	mockSealer.EXPECT().Seal([]byte("v2"), testKey.Key).Return("sealed-good", nil)
	mockAdapter.EXPECT().UpsertSecret(ctx, "BAD", "sealed-bad", testKey.KeyID).Return(upsertErr)
	mockAdapter.EXPECT().UpsertSecret(ctx, "GOOD", "sealed-good", testKey.KeyID).Return(nil)

	outcomes, err := svc.ApplySyncPlan(ctx, plan)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialFailure)

	require.Len(t, outcomes, 2)
	assert.Equal(t, models.OperationFailed, outcomes[0].Kind)
	assert.ErrorIs(t, outcomes[0].Err, upsertErr)
	assert.Equal(t, models.OperationOutcome{Name: "GOOD", Kind: models.OperationCreated}, outcomes[1])
}

func TestReconcileService_ApplySyncPlan_SealFailureSkipsUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSealer := newTestReconcileSvc(t, ctrl)
	ctx := context.Background()

	plan := models.SyncPlan{
		Update: []models.DesiredSecret{ds("A", "va"), ds("B", "vb")},
	}

	sealErr := errors.New("invalid public key")
	mockAdapter.EXPECT().GetPublicKey(ctx).Return(testKey, nil)
	mockSealer.EXPECT().Seal([]byte("va"), testKey.Key).Return("", sealErr)
	mockSealer.EXPECT().Seal([]byte("vb"), testKey.Key).Return("sealed-b", nil)
	// "A" failed to seal, so only "B" reaches the adapter.
	mockAdapter.EXPECT().UpsertSecret(ctx, "B", "sealed-b", testKey.KeyID).Return(nil)

	outcomes, err := svc.ApplySyncPlan(ctx, plan)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialFailure)

	require.Len(t, outcomes, 2)
	assert.Equal(t, models.OperationFailed, outcomes[0].Kind)
	assert.ErrorIs(t, outcomes[0].Err, sealErr)
	assert.Equal(t, models.OperationOutcome{Name: "B", Kind: models.OperationUpdated}, outcomes[1])
}
