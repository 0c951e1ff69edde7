package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, BackendMemory, cfg.Storage.Backend)
	require.True(t, cfg.Storage.Seed)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 3500*time.Millisecond, cfg.Notifications.TTL)
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("POSTGRES_DB_NAME", "other_db")
	t.Setenv("NOTIFICATIONS_TTL", "2s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, BackendPostgres, cfg.Storage.Backend)
	require.Equal(t, "other_db", cfg.Postgres.DBName)
	require.Equal(t, 2*time.Second, cfg.Notifications.TTL)
	require.Contains(t, cfg.Postgres.DSN(), "dbname=other_db")
}

func TestValidate(t *testing.T) {
	base := Config{
		Server:        ServerConfig{Port: 8080},
		Storage:       StorageConfig{Backend: BackendMemory},
		Notifications: NotificationsConfig{TTL: time.Second},
	}
	require.NoError(t, base.Validate())

	unknown := base
	unknown.Storage.Backend = "mongo"
	require.Error(t, unknown.Validate())

	pg := base
	pg.Storage.Backend = BackendPostgres
	require.Error(t, pg.Validate())

	noTTL := base
	noTTL.Notifications.TTL = 0
	require.Error(t, noTTL.Validate())

	tracing := base
	tracing.Tracing.Enabled = true
	require.Error(t, tracing.Validate())
}
