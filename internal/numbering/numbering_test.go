package numbering

import (
	"testing"
	"time"

	"workio/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestProjectNo(t *testing.T) {
	now := time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "PRJ-WEB-202509-001", ProjectNo(entities.CategoryWebApp, now, 1))
	require.Equal(t, "PRJ-MOB-202509-012", ProjectNo(entities.CategoryMobileApp, now, 12))
	require.Equal(t, "PRJ-INT-202509-001", ProjectNo(entities.CategoryInternalTool, now, 0))
	require.Equal(t, "PRJ-INT-202509-1000", ProjectNo(entities.CategoryInternalTool, now, 1000))
}

func TestDocumentNo(t *testing.T) {
	now := time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "DOC-202601-", DocumentPrefix(now))
	require.Equal(t, "DOC-202601-007", DocumentNo(now, 7))
}
