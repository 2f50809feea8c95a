package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	GitHub struct {
		Organization string `json:"organization"`
		Repository   string `json:"repository"`
		Token        string `json:"token"`
		SecretsJSON  string `json:"secrets"`
		SecretsFile  string `json:"secrets_file"`
	} `json:"github,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
	} `json:"adapter,omitempty"`

	Workers struct {
		Concurrency int `json:"concurrency"`
	} `json:"workers,omitempty"`

	App struct {
		NonInteractive bool `json:"non_interactive"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		GitHub: GitHub{
			Organization: jsonCfg.GitHub.Organization,
			Repository:   jsonCfg.GitHub.Repository,
			Token:        jsonCfg.GitHub.Token,
			SecretsJSON:  jsonCfg.GitHub.SecretsJSON,
			SecretsFile:  jsonCfg.GitHub.SecretsFile,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:     jsonCfg.Adapter.RetryCount,
		},
		Workers: Workers{
			Concurrency: jsonCfg.Workers.Concurrency,
		},
		App: App{
			NonInteractive: jsonCfg.App.NonInteractive,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
