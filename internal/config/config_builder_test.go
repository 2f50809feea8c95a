package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBase returns a config that passes validation; tests mutate single
// fields to exercise individual rules.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		GitHub: GitHub{
			Organization: "acme",
			Repository:   "rockets",
			Token:        "ghp_test_token",
			SecretsJSON:  `[]`,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validBase().validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing organization",
			mutate:  func(cfg *StructuredConfig) { cfg.GitHub.Organization = "" },
			wantErr: ErrInvalidRepoConfigs,
		},
		{
			name:    "missing repository",
			mutate:  func(cfg *StructuredConfig) { cfg.GitHub.Repository = "" },
			wantErr: ErrInvalidRepoConfigs,
		},
		{
			name:    "missing token",
			mutate:  func(cfg *StructuredConfig) { cfg.GitHub.Token = "" },
			wantErr: ErrMissingToken,
		},
		{
			name:    "no secrets source",
			mutate:  func(cfg *StructuredConfig) { cfg.GitHub.SecretsJSON = "" },
			wantErr: ErrMissingSecretsSource,
		},
		{
			name:    "both secrets sources",
			mutate:  func(cfg *StructuredConfig) { cfg.GitHub.SecretsFile = "/tmp/s.json" },
			wantErr: ErrAmbiguousSecretsSource,
		},
		{
			name:    "negative retry count",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RetryCount = -1 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative concurrency",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.Concurrency = -2 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(cfg)

			err := cfg.validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigBuilder_MergePriority(t *testing.T) {
	// First source wins for non-zero fields: a value set by an earlier
	// source is not overridden by a later one.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{GitHub: GitHub{Organization: "from-env", Repository: "rockets", Token: "t", SecretsJSON: "[]"}},
		&StructuredConfig{GitHub: GitHub{Organization: "from-flags"}, Workers: Workers{Concurrency: 8}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.GitHub.Organization)
	assert.Equal(t, 8, cfg.Workers.Concurrency)
}

func TestConfigBuilder_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
