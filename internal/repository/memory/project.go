package memory

import (
	"context"
	"strconv"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListProjects filters by status and searches name, owner, client and number.
func (m *Memory) ListProjects(_ context.Context, q listing.Query) (listing.Page[entities.Project], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return listing.Apply(m.projects, q, func(p entities.Project) bool {
		return q.MatchStatus(string(p.Status)) && q.MatchSearch(p.Name, p.Owner, p.Client, p.ProjectNo)
	}), nil
}

// AllProjects returns every project.
func (m *Memory) AllProjects(_ context.Context) ([]entities.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Project, len(m.projects))
	copy(out, m.projects)
	return out, nil
}

// GetProject finds a project by number.
func (m *Memory) GetProject(_ context.Context, projectNo string) (*entities.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.projects {
		if p.ProjectNo == projectNo {
			p := cloneProject(p)
			return &p, nil
		}
	}
	return nil, entities.ErrProjectNotFound
}

// GetProjectByID finds a project by id.
func (m *Memory) GetProjectByID(_ context.Context, id int64) (*entities.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.projects {
		if p.ID == id {
			p := cloneProject(p)
			return &p, nil
		}
	}
	return nil, entities.ErrProjectNotFound
}

// CountProjectNumbers counts projects whose number starts with prefix.
func (m *Memory) CountProjectNumbers(_ context.Context, prefix string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, p := range m.projects {
		if strings.HasPrefix(p.ProjectNo, prefix) {
			n++
		}
	}
	return n, nil
}

// CreateProject stores a project under a new id.
func (m *Memory) CreateProject(_ context.Context, p entities.Project) (*entities.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.projects {
		if existing.ProjectNo == p.ProjectNo {
			return nil, entities.ErrConflict
		}
	}
	p.ID = m.next("project")
	m.projects = append(m.projects, cloneProject(p))
	m.log.Infow("project created", "project_no", p.ProjectNo)
	return &p, nil
}

// UpdateProject replaces the project with the same number.
func (m *Memory) UpdateProject(_ context.Context, p entities.Project) (*entities.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.projects {
		if existing.ProjectNo == p.ProjectNo {
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
			m.projects[i] = cloneProject(p)
			return &p, nil
		}
	}
	return nil, entities.ErrProjectNotFound
}

// ProjectOptions returns id/name pairs of projects with status.
func (m *Memory) ProjectOptions(_ context.Context, status entities.ProjectStatus) ([]entities.Option, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Option, 0)
	for _, p := range m.projects {
		if p.Status == status {
			out = append(out, entities.Option{ID: strconv.FormatInt(p.ID, 10), Name: p.Name})
		}
	}
	return out, nil
}
