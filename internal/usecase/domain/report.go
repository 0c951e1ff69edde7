package domain

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"workio/internal/entities"
	"workio/internal/listing"
	"workio/pkg/format"
)

var (
	masterCSVHeader   = []string{"ID", "Type", "Name", "Status", "Icon", "Created At", "Created By"}
	documentCSVHeader = []string{"Doc No", "Title", "Project No", "Status", "Created By", "Submitted Date", "Last Updated", "Reviewers"}
	userCSVHeader     = []string{"ID", "Name", "Email", "Phone", "Role", "Unit", "Status", "Registered At"}
)

// ReportTypes lists the downloadable reports.
func (u *Usecase) ReportTypes(_ context.Context) []entities.ReportType {
	return append([]entities.ReportType(nil), entities.ReportTypes...)
}

// ExportReport writes the report of typ for the start and end dates, both
// inclusive, as CSV. Master data, documents and users are selected by their
// creation, last update and registration dates; transactions are the audit
// trail. It returns the number of rows written.
func (u *Usecase) ExportReport(ctx context.Context, w io.Writer, typ entities.ReportType, start, end time.Time) (int, error) {
	ctx, done := u.begin(ctx, "ExportReport")
	defer done()

	if !slices.Contains(entities.ReportTypes, typ) {
		v := entities.NewValidationError()
		v.Add("type", "Report type must be Master Data, Documents, Transactions or Users")
		return 0, v
	}
	from, to, err := reportRange(start, end)
	if err != nil {
		return 0, err
	}

	var (
		header []string
		rows   [][]string
	)
	switch typ {
	case entities.ReportMasterData:
		header = masterCSVHeader
		rows, err = u.masterRows(ctx, from, to)
	case entities.ReportDocuments:
		header = documentCSVHeader
		rows, err = u.documentRows(ctx, from, to)
	case entities.ReportTransactions:
		header = auditCSVHeader
		rows, err = u.auditRows(ctx, from, to)
	default:
		header = userCSVHeader
		rows, err = u.userRows(ctx, from, to)
	}
	if err != nil {
		return 0, fmt.Errorf("%s report: %w", typ.Slug(), err)
	}
	if err := writeCSV(w, header, rows); err != nil {
		return 0, err
	}

	u.log.Infow("report exported", "type", typ, "from", from, "to", to, "rows", len(rows))
	return len(rows), nil
}

func (u *Usecase) masterRows(ctx context.Context, from, to time.Time) ([][]string, error) {
	var rows [][]string
	for _, kind := range []entities.MasterKind{entities.KindRole, entities.KindUnit, entities.KindCategory} {
		items, err := collectPages(ctx, func(ctx context.Context, q listing.Query) (listing.Page[entities.MasterItem], error) {
			return u.repo.ListMaster(ctx, kind, q)
		})
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			if !within(it.CreatedAt, from, to) {
				continue
			}
			rows = append(rows, []string{
				strconv.FormatInt(it.ID, 10),
				masterLabels[it.Kind],
				it.Name,
				string(it.Status),
				it.Icon,
				format.DateTime(it.CreatedAt),
				it.CreatedBy,
			})
		}
	}
	return rows, nil
}

func (u *Usecase) documentRows(ctx context.Context, from, to time.Time) ([][]string, error) {
	docs, err := collectPages(ctx, u.repo.ListDocuments)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for _, d := range docs {
		if !within(d.LastUpdated, from, to) {
			continue
		}
		submitted := ""
		if d.SubmittedDate != nil {
			submitted = d.SubmittedDate.Format(format.DateLayout)
		}
		rows = append(rows, []string{
			d.DocNo,
			d.Title,
			d.ProjectNo,
			string(d.Status),
			d.CreatedBy,
			submitted,
			d.LastUpdated.Format(format.DateLayout),
			strings.Join(d.Reviewers, "; "),
		})
	}
	return rows, nil
}

func (u *Usecase) userRows(ctx context.Context, from, to time.Time) ([][]string, error) {
	members, err := collectPages(ctx, u.repo.ListMembers)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for _, m := range members {
		if !within(m.RegisteredAt, from, to) {
			continue
		}
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Name,
			m.Email,
			m.Phone,
			m.Role,
			m.Unit,
			string(m.Status),
			m.RegisteredAt.Format(format.DateLayout),
		})
	}
	return rows, nil
}

// collectPages reads every page of an unfiltered list.
func collectPages[T any](ctx context.Context, list func(context.Context, listing.Query) (listing.Page[T], error)) ([]T, error) {
	var out []T
	q := listing.Query{Page: 1, PageSize: listing.MaxPageSize}
	for {
		page, err := list(ctx, q)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
		if q.Page >= page.TotalPages {
			return out, nil
		}
		q.Page++
	}
}

// reportRange validates the requested days and widens them to
// [start 00:00, end 23:59:59.999999999].
func reportRange(start, end time.Time) (time.Time, time.Time, error) {
	v := entities.NewValidationError()
	if start.IsZero() {
		v.Add("start", "Start date is required")
	}
	if end.IsZero() {
		v.Add("end", "End date is required")
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		v.Add("end", "End date must not be before start date")
	}
	if err := v.OrNil(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startOfDay(start), startOfDay(end).AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
