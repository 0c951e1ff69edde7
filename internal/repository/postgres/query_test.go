package postgres

import (
	"errors"
	"fmt"
	"testing"

	"workio/internal/entities"
	"workio/internal/listing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestListFilter(t *testing.T) {
	f := listFilter(listing.Query{Status: "Active", Search: "50%_off"}, "status", "name", "owner")
	f.raw("NOT archived")

	require.Equal(t, `WHERE status = $1 AND (name ILIKE $2 OR owner ILIKE $2) AND NOT archived`, f.where())
	require.Equal(t, []any{"Active", `%50\%\_off%`}, f.args)
}

func TestListFilterEmpty(t *testing.T) {
	f := listFilter(listing.Query{}, "status", "name")
	require.Empty(t, f.where())
	require.Empty(t, f.args)
}

func TestIsHealthy(t *testing.T) {
	require.True(t, isHealthy(nil))
	require.True(t, isHealthy(pgx.ErrNoRows))
	require.True(t, isHealthy(fmt.Errorf("wrap: %w", entities.ErrConflict)))
	require.False(t, isHealthy(errors.New("connection refused")))
}

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation})))
	require.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, isUniqueViolation(errors.New("boom")))
}
