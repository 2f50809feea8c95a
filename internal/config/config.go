// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// gh-secret-sync. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// GitHub identifies the target repository, the credential, and the
	// declared secret list.
	GitHub GitHub `envPrefix:"GITHUB_"`

	// Adapter holds transport settings for the remote secrets API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings for the bounded pool that dispatches
	// per-secret operations.
	Workers Workers `envPrefix:"WORKERS_"`

	// App holds application-level switches.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags. Populated via the CONFIG environment variable
	// or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// GitHub holds everything needed to address one repository's secrets store.
type GitHub struct {
	// Organization is the repository owner (user or organization login).
	// Env: GITHUB_ORGANIZATION
	Organization string `env:"ORGANIZATION"`

	// Repository is the repository name without the owner prefix.
	// Env: GITHUB_REPOSITORY
	Repository string `env:"REPOSITORY"`

	// Token is the bearer credential sent with every API request. Needs
	// the repository secrets scope.
	// Env: GITHUB_TOKEN
	Token string `env:"TOKEN"`

	// SecretsJSON is the declared secret list as a raw JSON array of
	// {"name", "value"} objects. Mutually exclusive with SecretsFile.
	// Env: GITHUB_SECRETS
	SecretsJSON string `env:"SECRETS"`

	// SecretsFile is a path to a file holding the same JSON array.
	// Mutually exclusive with SecretsJSON.
	// Env: GITHUB_SECRETS_FILE
	SecretsFile string `env:"SECRETS_FILE"`
}

// Adapter holds transport settings for the outbound API client.
type Adapter struct {
	// BaseURL is the API root, overridable for GitHub Enterprise or tests.
	// Defaults to the public GitHub API when empty.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a failed request is retried by the
	// transport before the failure surfaces to the reconciler.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Workers holds settings for concurrent per-secret operation dispatch.
type Workers struct {
	// Concurrency bounds the number of in-flight API operations.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// App holds application-level switches.
type App struct {
	// NonInteractive skips the plan-review TUI and applies the plan
	// immediately. Intended for CI runs.
	// Env: APP_NON_INTERACTIVE
	NonInteractive bool `env:"NON_INTERACTIVE"`
}

// GetSyncConfig loads, merges, and validates the application configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetSyncConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
