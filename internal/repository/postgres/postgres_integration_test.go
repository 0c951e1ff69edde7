package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"workio/config"
	"workio/internal/entities"
	"workio/internal/fixtures"
	"workio/internal/listing"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	require.NoError(t, repo.Seed(ctx, fixtures.MustLoad()))

	page, err := repo.ListProjects(ctx, listing.Query{Status: "Active"}.Normalize(listing.ProjectPageSize))
	require.NoError(t, err)
	require.Equal(t, 3, page.Total)

	n, err := repo.CountProjectNumbers(ctx, "PRJ-WEB-202509-")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	created, err := repo.CreateProject(ctx, entities.Project{
		ProjectNo: "PRJ-INT-202510-001", Name: "Ops Console", Category: entities.CategoryInternalTool,
		Priority: entities.PriorityMedium, Status: entities.ProjectActive,
		StartDate: time.Now().UTC(), EndDate: time.Now().UTC(), CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), created.ID)

	_, err = repo.CreateProject(ctx, entities.Project{ProjectNo: "PRJ-INT-202510-001", Name: "dup", Category: entities.CategoryInternalTool})
	require.ErrorIs(t, err, entities.ErrConflict)

	_, err = repo.GetProject(ctx, "PRJ-NOPE")
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	tasks, err := repo.ListTasks(ctx, listing.Query{Search: "nadia"}.Normalize(listing.TaskPageSize))
	require.NoError(t, err)
	require.Len(t, tasks.Items, 1)

	archived, err := repo.ArchiveTask(ctx, tasks.Items[0].ID)
	require.NoError(t, err)
	require.True(t, archived.Archived)

	all, err := repo.AllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 11)

	docs, err := repo.ListDocuments(ctx, listing.Query{Page: 15}.Normalize(listing.DocumentPageSize))
	require.NoError(t, err)
	require.Equal(t, 72, docs.Total)
	require.Len(t, docs.Items, 2)

	_, err = repo.AddVersion(ctx, entities.DocumentVersion{DocNo: "DOC-2025-001", Version: "V1.0", UpdatedAt: time.Now()})
	require.ErrorIs(t, err, entities.ErrConflict)

	versions, err := repo.ListVersions(ctx, "DOC-2025-001")
	require.NoError(t, err)
	require.Equal(t, "v1.1", versions[0].Version)

	member, err := repo.GetMember(ctx, 1)
	require.NoError(t, err)
	require.Len(t, member.Tasks, 3)
	require.Len(t, member.History, 2)

	member.Unit = "Backend Developer"
	member.History = append(member.History, entities.HistoryItem{
		Type: entities.HistoryUnitChange, From: "Frontend Developer", To: "Backend Developer", Date: time.Now().UTC(),
	})
	updated, err := repo.UpdateMember(ctx, *member)
	require.NoError(t, err)
	require.Len(t, updated.History, 3)

	_, err = repo.CreateAccount(ctx, entities.Account{Name: "Copy", Email: "ALICE@example.com", Role: "Officer", Status: entities.StatusActive})
	require.ErrorIs(t, err, entities.ErrConflict)

	_, err = repo.CreateMaster(ctx, entities.MasterItem{Kind: entities.KindRole, Name: "manager", Status: entities.StatusActive})
	require.ErrorIs(t, err, entities.ErrConflict)

	roles, err := repo.ListMaster(ctx, entities.KindRole, listing.Query{}.Normalize(listing.RolePageSize))
	require.NoError(t, err)
	require.Equal(t, 6, roles.Total)
	require.Equal(t, "Designer/Creative", roles.Items[0].Name)
}

func TestRepositoryAuditIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	require.NoError(t, repo.Seed(ctx, fixtures.MustLoad()))

	entry, err := repo.AppendAudit(ctx, entities.AuditEntry{
		User: "Alice Johnson", Action: "Create Project", Module: "Projects",
		Timestamp: time.Now().UTC(), Status: entities.AuditSuccess,
	})
	require.NoError(t, err)
	require.Equal(t, int64(59), entry.ID)

	page, err := repo.ListAudit(ctx, listing.Query{}.Normalize(listing.AuditPageSize))
	require.NoError(t, err)
	require.Equal(t, 59, page.Total)
	require.Equal(t, entry.ID, page.Items[0].ID)

	from := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.September, 1, 23, 59, 59, 0, time.UTC)
	entries, err := repo.AuditBetween(ctx, from, to)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	counts, err := repo.CountDocumentsByStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, 18, counts[entities.DocumentDraft])
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=workio_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:    config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Storage: config.StorageConfig{Backend: config.BackendPostgres, Seed: true},
		Postgres: config.PostgresConfig{
			Host:            "localhost",
			Port:            port,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "workio_db",
			SSLMode:         "disable",
			MigrationsDir:   migrationsDir,
			QueryTimeout:    10 * time.Second,
			MigrateTimeout:  20 * time.Second,
			MaxConns:        4,
			MinConns:        1,
			BreakerFailures: 5,
			BreakerTimeout:  time.Second,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=workio_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
