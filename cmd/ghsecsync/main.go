package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/gh-secret-sync/internal/adapter"
	"github.com/MKhiriev/gh-secret-sync/internal/client"
	"github.com/MKhiriev/gh-secret-sync/internal/config"
	"github.com/MKhiriev/gh-secret-sync/internal/logger"
	"github.com/MKhiriev/gh-secret-sync/internal/service"
	"github.com/MKhiriev/gh-secret-sync/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewSyncLogger("gh-secret-sync")
	cfg, err := config.GetSyncConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	repoAdapter := adapter.NewHTTPRepoSecretsAdapter(adapter.HTTPClientConfig{
		BaseURL:      cfg.Adapter.BaseURL,
		Organization: cfg.GitHub.Organization,
		Repository:   cfg.GitHub.Repository,
		Token:        cfg.GitHub.Token,
		Timeout:      cfg.Adapter.RequestTimeout,
		RetryCount:   cfg.Adapter.RetryCount,
	})

	services := service.NewServices(repoAdapter, cfg.Workers.Concurrency, log)

	app, err := client.NewApp(cfg, services, tui.New(), log)
	if err != nil {
		log.Error().Err(err).Msg("init app error")
		fmt.Fprintf(os.Stderr, "init error: %v\n", err)
		os.Exit(1)
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("sync run error")
		fmt.Fprintf(os.Stderr, "sync failed: %v\n", err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
