// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote repository secrets API.
//
// The primary abstraction is [RepoSecretsAdapter], which decouples the
// service layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRepoSecretsAdapter]) shaped after GitHub's
// Actions-secrets endpoints.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/gh-secret-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repo_secrets_adapter_mock.go -package=mock

// RepoSecretsAdapter defines transport-agnostic access to one repository's
// encrypted-secrets store. Implementations are responsible for
// serialisation, authentication headers, pagination, and mapping
// transport-level errors to the sentinel values defined in this package.
//
// The store is write-only: secret values can be written but never read
// back, so the interface exposes names as the only observable remote state.
type RepoSecretsAdapter interface {
	// GetPublicKey fetches the repository's sealed-box public key and its
	// opaque key id. Called once per run; every secret of the run is
	// sealed against the returned key.
	GetPublicKey(ctx context.Context) (models.RepoPublicKey, error)

	// ListSecretNames returns the names of all secrets currently stored
	// in the repository, following pagination transparently so the result
	// is the complete union across pages.
	ListSecretNames(ctx context.Context) ([]string, error)

	// UpsertSecret creates or updates the named secret with the sealed
	// ciphertext. The remote API does not report which of the two
	// happened; callers derive that locally from the pre-fetched name set.
	UpsertSecret(ctx context.Context, name, encryptedValue, keyID string) error

	// DeleteSecret removes the named secret. Deleting a name that does
	// not exist is success: the desired end state ("name absent") already
	// holds.
	DeleteSecret(ctx context.Context, name string) error
}
