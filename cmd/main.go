package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"albumweld/internal/engine"
	"albumweld/internal/repositories"
	"albumweld/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	media := engine.New(config.Engine, logger)

	var runs *repositories.RunRepository
	if _, err := os.Stat(config.Database.Path); err == nil {
		if db, err := shared.NewDatabase(config.Database.Path); err == nil {
			shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
			runs = repositories.NewRunRepository(db)
		} else {
			logger.Warn("failed to open run-history database", "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Media:  media,
		Runs:   runs,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "albumweld",
		Usage:    "Sort per-track album rips into play order and weld them into one file",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
