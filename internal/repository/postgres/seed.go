package postgres

import (
	"context"
	"fmt"

	"workio/internal/fixtures"

	"github.com/jackc/pgx/v5"
)

const truncateAllQuery = `
TRUNCATE audit_trail, master_items, accounts, member_history, member_tasks, team_members,
    document_comments, document_versions, documents, tasks, projects RESTART IDENTITY CASCADE`

var serialTables = []string{
	"projects", "tasks", "documents", "document_versions", "document_comments",
	"team_members", "member_history", "accounts", "master_items", "audit_trail",
}

// Seed replaces every table with ds in one transaction.
func (p *Postgres) Seed(ctx context.Context, ds fixtures.Dataset) error {
	return p.guard(func() error {
		tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if _, err := tx.Exec(ctx, truncateAllQuery); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}

		for _, c := range seedCopies(ds) {
			if _, err := tx.CopyFrom(ctx, pgx.Identifier{c.table}, c.columns, pgx.CopyFromRows(c.rows)); err != nil {
				return fmt.Errorf("copy %s: %w", c.table, err)
			}
		}

		for _, table := range serialTables {
			q := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)", table)
			if _, err := tx.Exec(ctx, q); err != nil {
				return fmt.Errorf("reset sequence %s: %w", table, err)
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}
		p.log.Infow("postgres seeded", "projects", len(ds.Projects), "tasks", len(ds.Tasks), "documents", len(ds.Documents))
		return nil
	})
}

type seedCopy struct {
	table   string
	columns []string
	rows    [][]any
}

func seedCopies(ds fixtures.Dataset) []seedCopy {
	projects := seedCopy{table: "projects", columns: []string{
		"id", "project_no", "name", "description", "owner", "client", "category", "priority", "status",
		"start_date", "end_date", "budget", "progress", "created_at",
	}}
	for _, r := range ds.Projects {
		projects.rows = append(projects.rows, []any{r.ID, r.ProjectNo, r.Name, r.Description, r.Owner, r.Client,
			string(r.Category), string(r.Priority), string(r.Status), r.StartDate, r.EndDate, r.Budget, r.Progress, r.CreatedAt})
	}

	tasks := seedCopy{table: "tasks", columns: []string{
		"id", "title", "created_at", "due_date", "priority", "status", "assignees", "project_id", "notes", "archived",
	}}
	for _, r := range ds.Tasks {
		tasks.rows = append(tasks.rows, []any{r.ID, r.Title, r.CreatedAt, r.DueDate, string(r.Priority), string(r.Status),
			textArray(r.Assignees), r.ProjectID, r.Notes, r.Archived})
	}

	documents := seedCopy{table: "documents", columns: []string{
		"id", "doc_no", "title", "project_no", "status", "created_by", "submitted_date", "last_updated",
		"reviewers", "reviewed_by", "notes", "file_name",
	}}
	for _, r := range ds.Documents {
		documents.rows = append(documents.rows, []any{r.ID, r.DocNo, r.Title, r.ProjectNo, string(r.Status), r.CreatedBy,
			r.SubmittedDate, r.LastUpdated, textArray(r.Reviewers), r.ReviewedBy, r.Notes, r.FileName})
	}

	versions := seedCopy{table: "document_versions", columns: []string{"id", "doc_no", "version", "updated_by", "updated_at", "file_url"}}
	for _, r := range ds.Versions {
		versions.rows = append(versions.rows, []any{r.ID, r.DocNo, r.Version, r.UpdatedBy, r.UpdatedAt, r.FileURL})
	}

	comments := seedCopy{table: "document_comments", columns: []string{"id", "doc_no", "author", "job_title", "message", "created_at"}}
	for _, r := range ds.Comments {
		comments.rows = append(comments.rows, []any{r.ID, r.DocNo, r.Author, r.JobTitle, r.Message, r.CreatedAt})
	}

	members := seedCopy{table: "team_members", columns: []string{"id", "name", "email", "phone", "role", "unit", "registered_at", "status"}}
	memberTasks := seedCopy{table: "member_tasks", columns: []string{"member_id", "id", "title", "status"}}
	history := seedCopy{table: "member_history", columns: []string{"id", "member_id", "type", "from_value", "to_value", "changed_at"}}
	for _, r := range ds.Members {
		members.rows = append(members.rows, []any{r.ID, r.Name, r.Email, r.Phone, r.Role, r.Unit, r.RegisteredAt, string(r.Status)})
		for _, t := range r.Tasks {
			memberTasks.rows = append(memberTasks.rows, []any{r.ID, t.ID, t.Title, string(t.Status)})
		}
		for _, h := range r.History {
			history.rows = append(history.rows, []any{h.ID, r.ID, string(h.Type), h.From, h.To, h.Date})
		}
	}

	accounts := seedCopy{table: "accounts", columns: []string{"id", "name", "email", "role", "status"}}
	for _, r := range ds.Accounts {
		accounts.rows = append(accounts.rows, []any{r.ID, r.Name, r.Email, r.Role, string(r.Status)})
	}

	master := seedCopy{table: "master_items", columns: []string{"id", "kind", "name", "status", "icon", "created_at", "created_by"}}
	for _, r := range ds.Master {
		master.rows = append(master.rows, []any{r.ID, string(r.Kind), r.Name, string(r.Status), r.Icon, r.CreatedAt, r.CreatedBy})
	}

	audit := seedCopy{table: "audit_trail", columns: []string{"id", "user_name", "action", "module", "ts", "status"}}
	for _, r := range ds.Audit {
		audit.rows = append(audit.rows, []any{r.ID, r.User, r.Action, r.Module, r.Timestamp, string(r.Status)})
	}

	return []seedCopy{projects, tasks, documents, versions, comments, members, memberTasks, history, accounts, master, audit}
}
