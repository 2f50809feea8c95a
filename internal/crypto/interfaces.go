// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side sealing of secret values.
//
// The remote store mandates anonymous sealed-box encryption: the client
// encrypts against the repository's public key and can never decrypt the
// result — only the repository owner's private key, held remotely, can.
// No private key material ever exists in this process.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_service_mock.go -package=mock

// SealerService seals plaintext secret values for the remote write-only
// store.
//
// The scheme is the NaCl sealed box: an ephemeral X25519 keypair per
// message, key agreement with the recipient key, XSalsa20-Poly1305, and the
// ephemeral public key prepended to the ciphertext so the recipient can
// reconstruct the shared key.
type SealerService interface {
	// Seal encrypts plaintext against the base64-encoded 32-byte public
	// key and returns the ciphertext encoded with standard base64, ready
	// for the upsert request body. Returns a wrapped [ErrInvalidPublicKey]
	// if the key is not valid base64 or has the wrong length.
	Seal(plaintext []byte, publicKeyB64 string) (string, error)
}
