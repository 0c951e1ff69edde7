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
	projectColumns = "id, project_no, name, description, owner, client, category, priority, status, start_date, end_date, budget, progress, created_at"

	selectAllProjectsQuery = "SELECT " + projectColumns + " FROM projects ORDER BY id"
	selectProjectByNoQuery = "SELECT " + projectColumns + " FROM projects WHERE project_no=$1"
	selectProjectByIDQuery = "SELECT " + projectColumns + " FROM projects WHERE id=$1"
	countProjectNoQuery    = "SELECT COUNT(*) FROM projects WHERE project_no LIKE $1 || '%'"
	insertProjectQuery     = `
INSERT INTO projects(project_no, name, description, owner, client, category, priority, status, start_date, end_date, budget, progress, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
RETURNING ` + projectColumns
	updateProjectQuery = `
UPDATE projects SET name=$2, description=$3, owner=$4, client=$5, category=$6, priority=$7, status=$8,
    start_date=$9, end_date=$10, budget=$11, progress=$12
WHERE project_no=$1
RETURNING ` + projectColumns
	projectOptionsQuery = "SELECT id::text, name FROM projects WHERE status=$1 ORDER BY id"
)

func scanProject(s scanner) (entities.Project, error) {
	var p entities.Project
	err := s.Scan(&p.ID, &p.ProjectNo, &p.Name, &p.Description, &p.Owner, &p.Client, &p.Category,
		&p.Priority, &p.Status, &p.StartDate, &p.EndDate, &p.Budget, &p.Progress, &p.CreatedAt)
	return p, err
}

// ListProjects filters by status and searches name, owner, client and number.
func (p *Postgres) ListProjects(ctx context.Context, q listing.Query) (page listing.Page[entities.Project], err error) {
	err = p.guard(func() error {
		f := listFilter(q, "status", "name", "owner", "client", "project_no")
		page, err = listPage(ctx, p.db, "projects", projectColumns, "id", f, q, scanProject)
		return err
	})
	return page, err
}

// AllProjects returns every project.
func (p *Postgres) AllProjects(ctx context.Context) (out []entities.Project, err error) {
	err = p.guard(func() error {
		out, err = queryAll(ctx, p.db, selectAllProjectsQuery, scanProject)
		return err
	})
	return out, err
}

// GetProject finds a project by number.
func (p *Postgres) GetProject(ctx context.Context, projectNo string) (*entities.Project, error) {
	return p.getProject(ctx, selectProjectByNoQuery, projectNo)
}

// GetProjectByID finds a project by id.
func (p *Postgres) GetProjectByID(ctx context.Context, id int64) (*entities.Project, error) {
	return p.getProject(ctx, selectProjectByIDQuery, id)
}

func (p *Postgres) getProject(ctx context.Context, query string, key any) (res *entities.Project, err error) {
	err = p.guard(func() error {
		pr, err := scanProject(p.db.QueryRow(ctx, query, key))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrProjectNotFound
			}
			return fmt.Errorf("get project: %w", err)
		}
		res = &pr
		return nil
	})
	return res, err
}

// CountProjectNumbers counts projects whose number starts with prefix.
func (p *Postgres) CountProjectNumbers(ctx context.Context, prefix string) (n int, err error) {
	err = p.guard(func() error {
		if err := p.db.QueryRow(ctx, countProjectNoQuery, escapeLike(prefix)).Scan(&n); err != nil {
			return fmt.Errorf("count project numbers: %w", err)
		}
		return nil
	})
	return n, err
}

// CreateProject inserts a project. A taken number is ErrConflict.
func (p *Postgres) CreateProject(ctx context.Context, pr entities.Project) (res *entities.Project, err error) {
	err = p.guard(func() error {
		created, err := scanProject(p.db.QueryRow(ctx, insertProjectQuery,
			pr.ProjectNo, pr.Name, pr.Description, pr.Owner, pr.Client, pr.Category, pr.Priority, pr.Status,
			pr.StartDate, pr.EndDate, pr.Budget, pr.Progress, pr.CreatedAt))
		if err != nil {
			if isUniqueViolation(err) {
				return entities.ErrConflict
			}
			return fmt.Errorf("insert project: %w", err)
		}
		res = &created
		return nil
	})
	if err == nil {
		p.log.Infow("project created", "project_no", res.ProjectNo)
	}
	return res, err
}

// UpdateProject rewrites the editable fields of a project.
func (p *Postgres) UpdateProject(ctx context.Context, pr entities.Project) (res *entities.Project, err error) {
	err = p.guard(func() error {
		updated, err := scanProject(p.db.QueryRow(ctx, updateProjectQuery,
			pr.ProjectNo, pr.Name, pr.Description, pr.Owner, pr.Client, pr.Category, pr.Priority, pr.Status,
			pr.StartDate, pr.EndDate, pr.Budget, pr.Progress))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrProjectNotFound
			}
			return fmt.Errorf("update project: %w", err)
		}
		res = &updated
		return nil
	})
	return res, err
}

// ProjectOptions returns id/name pairs of projects with status.
func (p *Postgres) ProjectOptions(ctx context.Context, status entities.ProjectStatus) (out []entities.Option, err error) {
	err = p.guard(func() error {
		out, err = queryOptions(ctx, p.db, projectOptionsQuery, status)
		return err
	})
	return out, err
}
