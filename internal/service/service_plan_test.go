// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/gh-secret-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────────────────────────────────────

// ds is a shorthand constructor for DesiredSecret used only in tests.
func ds(name, value string) models.DesiredSecret {
	return models.DesiredSecret{Name: name, Value: value}
}

// ─────────────────────────────────────────────────────────────────────────────
// BuildSyncPlan — decision matrix (table-driven)
// ─────────────────────────────────────────────────────────────────────────────

// TestPlannerService_BuildSyncPlan_DecisionMatrix covers every cell of the
// classification table. Each sub-test is named after the condition it
// exercises so failures are immediately self-documenting.
func TestPlannerService_BuildSyncPlan_DecisionMatrix(t *testing.T) {
	tests := []struct {
		name        string
		desired     models.DesiredSecrets
		remoteNames []string
		wantPlan    models.SyncPlan
	}{
		{
			name:        "DesiredOnly → Create",
			desired:     models.DesiredSecrets{ds("API_KEY", "v1")},
			remoteNames: nil,
			wantPlan:    models.SyncPlan{Create: []models.DesiredSecret{ds("API_KEY", "v1")}},
		},
		{
			name:        "BothSides → Update",
			desired:     models.DesiredSecrets{ds("API_KEY", "v1")},
			remoteNames: []string{"API_KEY"},
			wantPlan:    models.SyncPlan{Update: []models.DesiredSecret{ds("API_KEY", "v1")}},
		},
		{
			name:        "RemoteOnly → Delete",
			desired:     nil,
			remoteNames: []string{"STALE_KEY"},
			wantPlan:    models.SyncPlan{Delete: []string{"STALE_KEY"}},
		},
		{
			name:        "BothEmpty → EmptyPlan",
			desired:     nil,
			remoteNames: nil,
			wantPlan:    models.SyncPlan{},
		},
		{
			name:        "Mixed → OnePerCategory",
			desired:     models.DesiredSecrets{ds("A", "va"), ds("B", "vb")},
			remoteNames: []string{"B", "C"},
			wantPlan: models.SyncPlan{
				Create: []models.DesiredSecret{ds("A", "va")},
				Update: []models.DesiredSecret{ds("B", "vb")},
				Delete: []string{"C"},
			},
		},
		{
			name:        "EmptyDesired → DeleteEverything",
			desired:     models.DesiredSecrets{},
			remoteNames: []string{"X", "Y", "Z"},
			wantPlan:    models.SyncPlan{Delete: []string{"X", "Y", "Z"}},
		},
		{
			name:        "IdenticalSets → UpdatesOnly",
			desired:     models.DesiredSecrets{ds("A", "va"), ds("B", "vb")},
			remoteNames: []string{"A", "B"},
			wantPlan: models.SyncPlan{
				Update: []models.DesiredSecret{ds("A", "va"), ds("B", "vb")},
			},
		},
	}

	svc := NewPlannerService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := svc.BuildSyncPlan(context.Background(), tt.desired, tt.remoteNames)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPlan, plan)
		})
	}
}

func TestPlannerService_BuildSyncPlan_PreservesInputOrder(t *testing.T) {
	desired := models.DesiredSecrets{ds("C", "1"), ds("A", "2"), ds("B", "3")}
	remoteNames := []string{"Z", "A", "Y"}

	plan, err := NewPlannerService().BuildSyncPlan(context.Background(), desired, remoteNames)

	require.NoError(t, err)
	assert.Equal(t, []models.DesiredSecret{ds("C", "1"), ds("B", "3")}, plan.Create)
	assert.Equal(t, []models.DesiredSecret{ds("A", "2")}, plan.Update)
	assert.Equal(t, []string{"Z", "Y"}, plan.Delete)
}

func TestPlannerService_BuildSyncPlan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPlannerService().BuildSyncPlan(ctx, models.DesiredSecrets{ds("A", "v")}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
