// Command migrate brings the database schema in line with migrations/ using
// Atlas' declarative schema apply. It needs the atlas binary on PATH.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"workspace-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	var (
		schemaFile = flag.String("schema", "migrations/001_initial_schema.sql", "desired schema")
		devURL     = flag.String("dev-url", "docker://postgres/16/dev", "scratch database Atlas diffs against")
		dryRun     = flag.Bool("dry-run", false, "print the plan without applying it")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	abs, err := filepath.Abs(*schemaFile)
	if err != nil {
		logger.Error("Invalid schema path", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("Failed to create atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.SchemaApply(context.Background(), &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          "file://" + abs,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("Schema apply failed", "error", err)
		os.Exit(1)
	}

	for _, stmt := range res.Changes.Pending {
		logger.Info("Pending", "stmt", stmt)
	}
	for _, stmt := range res.Changes.Applied {
		logger.Info("Applied", "stmt", stmt)
	}
	logger.Info("Schema is up to date", "applied", len(res.Changes.Applied), "dry_run", *dryRun)
}
