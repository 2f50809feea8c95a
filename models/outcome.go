package models

// OperationKind names the result of a single reconciliation operation.
type OperationKind string

const (
	OperationCreated OperationKind = "created"
	OperationUpdated OperationKind = "updated"
	OperationDeleted OperationKind = "deleted"
	OperationFailed  OperationKind = "failed"
)

// OperationOutcome records what happened to a single secret name during a
// run. Produced per run for reporting only; never persisted.
type OperationOutcome struct {
	// Name is the secret name the operation targeted.
	Name string

	// Kind is the observed result. Created vs Updated is derived from the
	// pre-fetched remote name set, never from the API response.
	Kind OperationKind

	// Err carries the per-item failure when Kind is OperationFailed,
	// nil otherwise.
	Err error
}

// Failed reports whether the outcome records a per-item failure.
func (o OperationOutcome) Failed() bool {
	return o.Kind == OperationFailed
}
