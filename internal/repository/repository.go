// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"workio/config"
	"workio/internal/repository/memory"
	"workio/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	SeedInterface
	ProjectInterface
	TaskInterface
	DocumentInterface
	MemberInterface
	AccountInterface
	MasterInterface
	AuditInterface
}

var (
	_ Repository = (*memory.Memory)(nil)
	_ Repository = (*postgres.Postgres)(nil)
)

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendMemory:
		return memory.New(log), nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
