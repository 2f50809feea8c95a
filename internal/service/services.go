package service

import (
	"github.com/MKhiriev/gh-secret-sync/internal/adapter"
	"github.com/MKhiriev/gh-secret-sync/internal/crypto"
	"github.com/MKhiriev/gh-secret-sync/internal/logger"
)

type Services struct {
	Planner    PlannerService
	Reconciler ReconcileService
}

func NewServices(repoAdapter adapter.RepoSecretsAdapter, concurrency int, log *logger.Logger) *Services {
	return &Services{
		Planner:    NewPlannerService(),
		Reconciler: NewReconcileService(repoAdapter, crypto.NewSealerService(), concurrency, log),
	}
}
