package main

import (
	"context"
	"fmt"

	"workio/config"
	"workio/internal/fixtures"
	"workio/internal/repository"
	"workio/pkg/logger"

	"go.uber.org/zap"
)

func loadConfig() (*config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewWithOptions(cfg.Logging.Level, logger.Options{
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// openRepository starts the configured backend and loads the mock dataset
// when seeding is enabled.
func openRepository(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (repository.Repository, error) {
	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		return nil, fmt.Errorf("repository initialization: %w", err)
	}
	if err := repo.OnStart(ctx); err != nil {
		return nil, fmt.Errorf("repository start: %w", err)
	}
	if !cfg.Storage.Seed {
		return repo, nil
	}

	ds, err := fixtures.Load()
	if err != nil {
		_ = repo.OnStop(context.Background())
		return nil, err
	}
	if err := repo.Seed(ctx, ds); err != nil {
		_ = repo.OnStop(context.Background())
		return nil, fmt.Errorf("seed: %w", err)
	}
	log.Infow("mock dataset loaded",
		"backend", cfg.Storage.Backend,
		"projects", len(ds.Projects),
		"tasks", len(ds.Tasks),
		"documents", len(ds.Documents),
	)
	return repo, nil
}
