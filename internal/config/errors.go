package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRepoConfigs indicates a missing organization or repository
	// name.
	ErrInvalidRepoConfigs = errors.New("invalid repository configuration")
	// ErrMissingToken indicates that no API credential was supplied.
	ErrMissingToken = errors.New("missing api token")
	// ErrMissingSecretsSource indicates that neither an inline secrets JSON
	// nor a secrets file path was supplied.
	ErrMissingSecretsSource = errors.New("missing desired secrets source")
	// ErrAmbiguousSecretsSource indicates that both an inline secrets JSON
	// and a secrets file path were supplied.
	ErrAmbiguousSecretsSource = errors.New("both inline secrets and secrets file provided")
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, a negative timeout or retry count).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker pool settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
