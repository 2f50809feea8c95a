package models

// SecretStatus classifies a secret relative to the pre-fetched remote name
// set. The remote API does not distinguish create from update, so this
// classification is always computed locally.
type SecretStatus string

const (
	// StatusNew — declared but absent from the remote store.
	StatusNew SecretStatus = "new"
	// StatusExisting — declared and already present remotely.
	StatusExisting SecretStatus = "existing"
	// StatusDeleted — present remotely but absent from the declared list.
	StatusDeleted SecretStatus = "deleted"
)

// PlannedSecret is one row of a sync plan as shown to the operator: the
// secret name, its plaintext value (empty for remote-only entries — the
// store is write-only) and the action the plan will take.
type PlannedSecret struct {
	Name   string
	Value  string
	Status SecretStatus
}

// SyncPlan is the derived set of operations that makes the remote secret
// store match the declared list. It is computed once per run and never
// persisted.
type SyncPlan struct {
	// Create holds declared secrets absent from the remote store.
	Create []DesiredSecret

	// Update holds declared secrets already present remotely. The remote
	// upsert call is identical for both; the split exists only for
	// reporting.
	Update []DesiredSecret

	// Delete holds remote-only secret names that must be removed.
	Delete []string
}

// Empty reports whether the plan contains no operations at all.
func (p SyncPlan) Empty() bool {
	return len(p.Create) == 0 && len(p.Update) == 0 && len(p.Delete) == 0
}

// Rows flattens the plan into display rows: creates and updates in plan
// order, then deletions.
func (p SyncPlan) Rows() []PlannedSecret {
	rows := make([]PlannedSecret, 0, len(p.Create)+len(p.Update)+len(p.Delete))
	for _, s := range p.Create {
		rows = append(rows, PlannedSecret{Name: s.Name, Value: s.Value, Status: StatusNew})
	}
	for _, s := range p.Update {
		rows = append(rows, PlannedSecret{Name: s.Name, Value: s.Value, Status: StatusExisting})
	}
	for _, name := range p.Delete {
		rows = append(rows, PlannedSecret{Name: name, Status: StatusDeleted})
	}
	return rows
}
