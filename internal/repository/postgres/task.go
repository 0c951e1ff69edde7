package postgres

import (
	"context"
	"errors"
	"fmt"

	"workio/internal/entities"
	"workio/internal/listing"

	"github.com/jackc/pgx/v5"
)

const (
	taskColumns = "id, title, created_at, due_date, priority, status, assignees, project_id, notes, archived"

	selectAllTasksQuery       = "SELECT " + taskColumns + " FROM tasks WHERE NOT archived ORDER BY id"
	selectTasksByProjectQuery = "SELECT " + taskColumns + " FROM tasks WHERE NOT archived AND project_id=$1 ORDER BY id"
	selectTaskQuery           = "SELECT " + taskColumns + " FROM tasks WHERE id=$1"
	insertTaskQuery           = `
INSERT INTO tasks(title, created_at, due_date, priority, status, assignees, project_id, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING ` + taskColumns
	updateTaskQuery = `
UPDATE tasks SET title=$2, due_date=$3, priority=$4, status=$5, assignees=$6, project_id=$7, notes=$8
WHERE id=$1
RETURNING ` + taskColumns
	archiveTaskQuery  = "UPDATE tasks SET archived=true WHERE id=$1 RETURNING " + taskColumns
	taskOptionsQuery  = "SELECT id::text, title FROM tasks WHERE NOT archived AND status=$1 ORDER BY id"
	taskSearchColumns = "array_to_string(assignees, ' ')"
)

func scanTask(s scanner) (entities.Task, error) {
	var t entities.Task
	err := s.Scan(&t.ID, &t.Title, &t.CreatedAt, &t.DueDate, &t.Priority, &t.Status,
		&t.Assignees, &t.ProjectID, &t.Notes, &t.Archived)
	if t.Assignees == nil {
		t.Assignees = []string{}
	}
	return t, err
}

// ListTasks filters by status and searches title and assignees.
func (p *Postgres) ListTasks(ctx context.Context, q listing.Query) (page listing.Page[entities.Task], err error) {
	err = p.guard(func() error {
		f := listFilter(q, "status", "title", taskSearchColumns)
		f.raw("NOT archived")
		page, err = listPage(ctx, p.db, "tasks", taskColumns, "id", f, q, scanTask)
		return err
	})
	return page, err
}

// AllTasks returns every task that is not archived.
func (p *Postgres) AllTasks(ctx context.Context) (out []entities.Task, err error) {
	err = p.guard(func() error {
		out, err = queryAll(ctx, p.db, selectAllTasksQuery, scanTask)
		return err
	})
	return out, err
}

// TasksByProject returns the non archived tasks of a project.
func (p *Postgres) TasksByProject(ctx context.Context, projectID int64) (out []entities.Task, err error) {
	err = p.guard(func() error {
		out, err = queryAll(ctx, p.db, selectTasksByProjectQuery, scanTask, projectID)
		return err
	})
	return out, err
}

// GetTask finds a task by id, archived or not.
func (p *Postgres) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	return p.taskRow(ctx, "get task", selectTaskQuery, id)
}

// CreateTask inserts a task.
func (p *Postgres) CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	return p.taskRow(ctx, "insert task", insertTaskQuery,
		t.Title, t.CreatedAt, t.DueDate, t.Priority, t.Status, textArray(t.Assignees), t.ProjectID, t.Notes)
}

// UpdateTask rewrites the editable fields of a task.
func (p *Postgres) UpdateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	return p.taskRow(ctx, "update task", updateTaskQuery,
		t.ID, t.Title, t.DueDate, t.Priority, t.Status, textArray(t.Assignees), t.ProjectID, t.Notes)
}

// ArchiveTask hides a task from lists. Archiving twice is a no-op.
func (p *Postgres) ArchiveTask(ctx context.Context, id int64) (*entities.Task, error) {
	return p.taskRow(ctx, "archive task", archiveTaskQuery, id)
}

// TaskOptions returns id/title pairs of non archived tasks with status.
func (p *Postgres) TaskOptions(ctx context.Context, status entities.TaskStatus) (out []entities.Option, err error) {
	err = p.guard(func() error {
		out, err = queryOptions(ctx, p.db, taskOptionsQuery, status)
		return err
	})
	return out, err
}

func (p *Postgres) taskRow(ctx context.Context, op, query string, args ...any) (res *entities.Task, err error) {
	err = p.guard(func() error {
		t, err := scanTask(p.db.QueryRow(ctx, query, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrTaskNotFound
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		res = &t
		return nil
	})
	return res, err
}
