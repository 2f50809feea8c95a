package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-org organization or user owning the repository
//	-repo repository name
//	-token bearer credential for the secrets API
//	-secrets raw JSON array of {"name","value"} objects
//	-secrets-file path to a file with the same JSON array
//	-api-url base URL of the secrets API
//	-request-timeout per-request timeout (e.g., "15s")
//	-retry-count transport-level retry count
//	-concurrency bounded worker pool size
//	-non-interactive skip the plan review TUI and apply immediately
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var organization string
	var repository string
	var token string
	var secretsJSON string
	var secretsFile string
	var apiURL string
	var requestTimeout time.Duration
	var retryCount int
	var concurrency int
	var nonInteractive bool
	var jsonConfigPath string

	flag.StringVar(&organization, "org", "", "Repository owner (user or organization)")
	flag.StringVar(&repository, "repo", "", "Repository name")
	flag.StringVar(&token, "token", "", "API bearer token")
	flag.StringVar(&secretsJSON, "secrets", "", "Desired secrets as a JSON array")
	flag.StringVar(&secretsFile, "secrets-file", "", "Path to a JSON file with desired secrets")
	flag.StringVar(&apiURL, "api-url", "", "Secrets API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.IntVar(&retryCount, "retry-count", 0, "Transport retry count")
	flag.IntVar(&concurrency, "concurrency", 0, "Concurrent API operations limit")
	flag.BoolVar(&nonInteractive, "non-interactive", false, "Apply without the review TUI")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		GitHub: GitHub{
			Organization: organization,
			Repository:   repository,
			Token:        token,
			SecretsJSON:  secretsJSON,
			SecretsFile:  secretsFile,
		},
		Adapter: Adapter{
			BaseURL:        apiURL,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
		},
		Workers: Workers{
			Concurrency: concurrency,
		},
		App: App{
			NonInteractive: nonInteractive,
		},
		JSONFilePath: jsonConfigPath,
	}
}
