// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before any network call is made. A failure here is a fatal
// startup error.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.GitHub.Organization == "" || cfg.GitHub.Repository == "" {
		return ErrInvalidRepoConfigs
	}

	if cfg.GitHub.Token == "" {
		return ErrMissingToken
	}

	if cfg.GitHub.SecretsJSON == "" && cfg.GitHub.SecretsFile == "" {
		return ErrMissingSecretsSource
	}
	if cfg.GitHub.SecretsJSON != "" && cfg.GitHub.SecretsFile != "" {
		return ErrAmbiguousSecretsSource
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.Concurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
