package fixtures

import (
	"testing"

	"workio/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	require.Len(t, ds.Projects, 5)
	require.Len(t, ds.Tasks, 12)
	require.Len(t, ds.Documents, 72)
	require.Len(t, ds.Audit, 58)
	require.Len(t, ds.Members, 5)
	require.Len(t, ds.Accounts, 5)
	require.Len(t, ds.Master, 6+7+3)

	for _, p := range ds.Projects {
		require.True(t, p.Status.Valid(), p.Name)
		require.True(t, p.Category.Valid(), p.Name)
		require.False(t, p.StartDate.IsZero(), p.Name)
	}
	for _, task := range ds.Tasks {
		require.True(t, task.Status.Valid(), task.Title)
		require.NotEmpty(t, task.Assignees, task.Title)
	}

	alice := ds.Members[0]
	require.Equal(t, "Frontend Developer", alice.Unit)
	require.Len(t, alice.Tasks, 3)
	require.Equal(t, entities.HistoryUnitChange, alice.History[0].Type)
}

func TestDocumentsGenerator(t *testing.T) {
	docs := Documents(8)

	require.Equal(t, "DOC-2025-001", docs[0].DocNo)
	require.Equal(t, entities.DocumentDraft, docs[0].Status)
	require.Nil(t, docs[0].SubmittedDate)
	require.Empty(t, docs[0].ReviewedBy)

	require.Equal(t, entities.DocumentApproved, docs[2].Status)
	require.NotNil(t, docs[2].SubmittedDate)
	require.Equal(t, docs[2].Reviewers[0], docs[2].ReviewedBy)

	require.Equal(t, "PRJ-WEB-202509-001", docs[3].ProjectNo)
}

func TestAuditGenerator(t *testing.T) {
	entries := AuditTrail(58)

	require.Equal(t, entities.AuditSuccess, entries[0].Status)
	require.Equal(t, entities.AuditFailed, entries[1].Status)
	require.Equal(t, 8, entries[0].Timestamp.Hour())
	require.Equal(t, 15, entries[0].Timestamp.Minute())
}
