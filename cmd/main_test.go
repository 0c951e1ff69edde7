package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{"serve", "migrate", "seed", "export-audit", "export-report"}, names)
}

func TestExportAuditRejectsBadDates(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"export-audit", "--start", "09/01/2025", "--end", "2025-09-30"})

	err := root.Execute()
	require.ErrorContains(t, err, "--start must be YYYY-MM-DD")
}

func TestExportReportRejectsUnknownType(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"export-report", "--type", "invoices", "--start", "2025-09-01", "--end", "2025-09-30"})

	err := root.Execute()
	require.ErrorContains(t, err, "--type must be one of")
}
