package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace stored data with the bundled mock dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.Storage.Seed = true

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			repo, err := openRepository(ctx, cfg, log)
			if err != nil {
				return err
			}
			return repo.OnStop(context.Background())
		},
	}
}
