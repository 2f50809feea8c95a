// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// publicKeySize is the length of an X25519 public key.
const publicKeySize = 32

// sealerService is the private implementation of [SealerService].
type sealerService struct{}

// NewSealerService constructs a [SealerService] backed by NaCl anonymous
// sealed boxes. The service is stateless; one instance serves a whole run.
func NewSealerService() SealerService {
	return &sealerService{}
}

// Seal implements [SealerService]. Randomness for the ephemeral keypair
// comes from the OS CSPRNG, so sealing the same plaintext twice yields
// different ciphertexts.
func (s *sealerService) Seal(plaintext []byte, publicKeyB64 string) (string, error) {
	keyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(keyBytes) != publicKeySize {
		return "", fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPublicKey, len(keyBytes), publicKeySize)
	}

	var recipientKey [publicKeySize]byte
	copy(recipientKey[:], keyBytes)

	sealed, err := box.SealAnonymous(nil, plaintext, &recipientKey, rand.Reader)
	if err != nil {
		return "", fmt.Errorf("seal secret value: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}
