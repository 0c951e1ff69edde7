package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
	"workio/internal/numbering"

	"golang.org/x/sync/errgroup"
)

// numberAttempts bounds retries when a generated number is taken concurrently.
const numberAttempts = 3

// ListProjects returns one page of projects.
func (u *Usecase) ListProjects(ctx context.Context, q listing.Query) (listing.Page[entities.Project], error) {
	ctx, end := u.begin(ctx, "ListProjects")
	defer end()

	return u.repo.ListProjects(ctx, normalize(q, listing.ProjectPageSize))
}

// AllProjects returns every project.
func (u *Usecase) AllProjects(ctx context.Context) ([]entities.Project, error) {
	ctx, end := u.begin(ctx, "AllProjects")
	defer end()

	return u.repo.AllProjects(ctx)
}

// Project returns a project with its tasks and documents.
func (u *Usecase) Project(ctx context.Context, projectNo string) (*entities.ProjectDetail, error) {
	ctx, end := u.begin(ctx, "Project")
	defer end()

	projectNo = strings.TrimSpace(projectNo)
	if projectNo == "" {
		return nil, fmt.Errorf("%w: project_no is required", entities.ErrInvalidArgument)
	}
	p, err := u.repo.GetProject(ctx, projectNo)
	if err != nil {
		return nil, err
	}

	detail := &entities.ProjectDetail{Project: *p}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tasks, err := u.repo.TasksByProject(gctx, p.ID)
		detail.Tasks = tasks
		return err
	})
	g.Go(func() error {
		docs, err := u.repo.DocumentsByProject(gctx, p.ProjectNo)
		detail.Documents = docs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("project relations: %w", err)
	}
	return detail, nil
}

// CreateProject validates p, assigns its number and stores it.
func (u *Usecase) CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	ctx, end := u.begin(ctx, "CreateProject")
	defer end()

	res, err := u.createProject(ctx, p)
	u.finish(ctx, moduleProjects, "Create Project", err, "Project created successfully")
	return res, err
}

func (u *Usecase) createProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	p = defaultProject(p)
	if err := validateProject(p); err != nil {
		return nil, err
	}

	now := u.now()
	p.CreatedAt = now
	prefix := numbering.ProjectPrefix(p.Category, now)
	for attempt := 0; attempt < numberAttempts; attempt++ {
		n, err := u.repo.CountProjectNumbers(ctx, prefix)
		if err != nil {
			return nil, err
		}
		p.ProjectNo = numbering.ProjectNo(p.Category, now, n+1+attempt)

		res, err := u.repo.CreateProject(ctx, p)
		if errors.Is(err, entities.ErrConflict) {
			u.log.Warnw("project number taken, retrying", "project_no", p.ProjectNo, "attempt", attempt+1)
			continue
		}
		return res, err
	}
	return nil, fmt.Errorf("%w: could not allocate project number with prefix %s", entities.ErrConflict, prefix)
}

// UpdateProject rewrites the editable fields of an existing project.
func (u *Usecase) UpdateProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	ctx, end := u.begin(ctx, "UpdateProject")
	defer end()

	res, err := u.updateProject(ctx, p)
	u.finish(ctx, moduleProjects, "Update Project", err, "Project updated successfully")
	return res, err
}

func (u *Usecase) updateProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	existing, err := u.repo.GetProject(ctx, strings.TrimSpace(p.ProjectNo))
	if err != nil {
		return nil, err
	}
	p = defaultProject(p)
	if err := validateProject(p); err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.ProjectNo = existing.ProjectNo
	p.CreatedAt = existing.CreatedAt
	return u.repo.UpdateProject(ctx, p)
}

// ActiveProjects lists active projects for selection inputs.
func (u *Usecase) ActiveProjects(ctx context.Context) ([]entities.Option, error) {
	ctx, end := u.begin(ctx, "ActiveProjects")
	defer end()

	return u.repo.ProjectOptions(ctx, entities.ProjectActive)
}

func defaultProject(p entities.Project) entities.Project {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Owner = strings.TrimSpace(p.Owner)
	p.Client = strings.TrimSpace(p.Client)
	if p.Priority == "" {
		p.Priority = entities.PriorityMedium
	}
	if p.Status == "" {
		p.Status = entities.ProjectActive
	}
	return p
}

func validateProject(p entities.Project) error {
	v := entities.NewValidationError()
	required(v, "name", p.Name, "Project name is required")
	required(v, "description", p.Description, "Description is required")
	required(v, "client", p.Client, "Client is required")
	switch {
	case p.Category == "":
		v.Add("category", "Category is required")
	case !p.Category.Valid():
		v.Add("category", "Category is not supported")
	}
	if !p.Priority.Valid() {
		v.Add("priority", "Priority must be High, Medium or Low")
	}
	if !p.Status.Valid() {
		v.Add("status", "Status must be Active, Inactive or Completed")
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		v.Add("end_date", "End date must not be before start date")
	}
	if p.Progress < 0 || p.Progress > 100 {
		v.Add("progress", "Progress must be between 0 and 100")
	}
	if p.Budget < 0 {
		v.Add("budget", "Budget must not be negative")
	}
	return v.OrNil()
}
