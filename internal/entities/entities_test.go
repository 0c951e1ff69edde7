package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationErrorUnwrapsToInvalidArgument(t *testing.T) {
	v := NewValidationError()
	require.NoError(t, v.OrNil())

	v.Add("name", "Name is required")
	v.Add("name", "ignored")
	v.Add("email", "Invalid email")

	err := fmt.Errorf("create account: %w", v.OrNil())
	require.ErrorIs(t, err, ErrInvalidArgument)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "Name is required", ve.Fields["name"])
	require.Equal(t, "invalid argument: email: Invalid email; name: Name is required", ve.Error())
}

func TestDocumentTransitions(t *testing.T) {
	require.True(t, DocumentDraft.CanTransition(DocumentSubmitted))
	require.True(t, DocumentRejected.CanTransition(DocumentSubmitted))
	require.True(t, DocumentSubmitted.CanTransition(DocumentApproved))
	require.True(t, DocumentSubmitted.CanTransition(DocumentRejected))

	require.False(t, DocumentDraft.CanTransition(DocumentApproved))
	require.False(t, DocumentApproved.CanTransition(DocumentSubmitted))
	require.False(t, DocumentSubmitted.CanTransition(DocumentDraft))
}

func TestCategoryPrefix(t *testing.T) {
	require.Equal(t, "WEB", CategoryWebApp.Prefix())
	require.Equal(t, "MOB", CategoryMobileApp.Prefix())
	require.Equal(t, "INT", CategoryInternalTool.Prefix())
	require.False(t, Category("Desktop").Valid())
}

func TestBadge(t *testing.T) {
	require.Equal(t, "bg-green-100 text-green-700 border-green-500", Badge(string(ProjectActive)))
	require.Equal(t, "bg-blue-100 text-blue-600 border-blue-500", Badge(string(TaskInProgress)))
	require.Equal(t, "bg-gray-100 text-gray-700 border-gray-500", Badge("Unknown"))
}

func TestParseReportType(t *testing.T) {
	for in, want := range map[string]ReportType{
		"Master Data":  ReportMasterData,
		"master-data":  ReportMasterData,
		" documents ":  ReportDocuments,
		"TRANSACTIONS": ReportTransactions,
		"users":        ReportUsers,
	} {
		got, ok := ParseReportType(in)
		require.True(t, ok, in)
		require.Equal(t, want, got)
	}

	_, ok := ParseReportType("invoices")
	require.False(t, ok)
	require.Equal(t, "master-data", ReportMasterData.Slug())
}
