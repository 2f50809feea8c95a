package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"github": {
			"organization": "acme",
			"repository": "rockets",
			"token": "ghp_test_token",
			"secrets_file": "/var/run/secrets.json"
		},
		"adapter": {
			"base_url": "https://github.example.com/api/v3",
			"request_timeout": "15s",
			"retry_count": 2
		},
		"workers": {"concurrency": 4},
		"app": {"non_interactive": true}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.GitHub.Organization)
	assert.Equal(t, "rockets", cfg.GitHub.Repository)
	assert.Equal(t, "ghp_test_token", cfg.GitHub.Token)
	assert.Equal(t, "/var/run/secrets.json", cfg.GitHub.SecretsFile)
	assert.Equal(t, "https://github.example.com/api/v3", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Adapter.RetryCount)
	assert.Equal(t, 4, cfg.Workers.Concurrency)
	assert.True(t, cfg.App.NonInteractive)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"github": {`)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string duration", input: `"1h"`, want: time.Hour},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "invalid string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
