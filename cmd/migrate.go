package main

import (
	"context"
	"fmt"

	"workio/config"
	"workio/internal/repository/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Storage.Backend != config.BackendPostgres {
				return fmt.Errorf("migrate requires storage.backend=%s, got %s", config.BackendPostgres, cfg.Storage.Backend)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return postgres.New(ctx, log, cfg).Migrate(ctx)
		},
	}
}
