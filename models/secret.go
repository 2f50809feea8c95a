// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DesiredSecret is a single entry of the declared secret list: a secret name
// and its plaintext value. The value never leaves the process unencrypted.
type DesiredSecret struct {
	// Name is the secret name as it must appear in the repository store.
	// Validated against the remote naming rules at parse time.
	Name string `json:"name"`

	// Value is the plaintext secret value. May be empty — an empty secret
	// is still a secret.
	Value string `json:"value"`
}

// DesiredSecrets is the declared target state: an ordered list of uniquely
// named secrets. Order is preserved from the input so the review UI shows
// entries the way the operator wrote them; uniqueness is guaranteed by the
// parser.
type DesiredSecrets []DesiredSecret

// Names returns the secret names in declaration order.
func (d DesiredSecrets) Names() []string {
	names := make([]string, 0, len(d))
	for _, s := range d {
		names = append(names, s.Name)
	}
	return names
}

// Index returns a name→value lookup map over the list.
func (d DesiredSecrets) Index() map[string]string {
	idx := make(map[string]string, len(d))
	for _, s := range d {
		idx[s.Name] = s.Value
	}
	return idx
}

// RepoPublicKey is the repository's sealed-box public key as served by the
// remote API. It is fetched once per run and treated as immutable for the
// run's duration; every secret in the run is sealed against it.
type RepoPublicKey struct {
	// KeyID is the opaque identifier the API requires alongside every
	// ciphertext so the server can pick the matching private key.
	KeyID string `json:"key_id"`

	// Key is the base64-encoded 32-byte X25519 public key.
	Key string `json:"key"`
}

// RemoteSecretRef is the only observable state of an existing remote secret:
// its name. The store is write-only — values are never returned.
type RemoteSecretRef struct {
	Name string `json:"name"`
}
