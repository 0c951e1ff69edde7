package domain

import (
	"context"
	"io"
	"strconv"
	"time"

	"workio/internal/entities"
	"workio/internal/listing"
	"workio/pkg/format"
)

var auditCSVHeader = []string{"ID", "User", "Action", "Module", "Timestamp", "Status"}

// ListAudit returns one page of the audit trail, newest first.
func (u *Usecase) ListAudit(ctx context.Context, q listing.Query) (listing.Page[entities.AuditEntry], error) {
	ctx, end := u.begin(ctx, "ListAudit")
	defer end()

	return u.repo.ListAudit(ctx, normalize(q, listing.AuditPageSize))
}

// ExportAudit writes the entries logged between the start and end dates,
// both days inclusive, as CSV. It returns the number of rows written.
func (u *Usecase) ExportAudit(ctx context.Context, w io.Writer, start, end time.Time) (int, error) {
	ctx, done := u.begin(ctx, "ExportAudit")
	defer done()

	from, to, err := reportRange(start, end)
	if err != nil {
		return 0, err
	}
	rows, err := u.auditRows(ctx, from, to)
	if err != nil {
		return 0, err
	}
	if err := writeCSV(w, auditCSVHeader, rows); err != nil {
		return 0, err
	}

	u.log.Infow("audit exported", "from", from, "to", to, "rows", len(rows))
	return len(rows), nil
}

func (u *Usecase) auditRows(ctx context.Context, from, to time.Time) ([][]string, error) {
	entries, err := u.repo.AuditBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.User,
			e.Action,
			e.Module,
			format.DateTime(e.Timestamp),
			string(e.Status),
		})
	}
	return rows, nil
}
