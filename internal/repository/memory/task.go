package memory

import (
	"context"
	"strconv"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListTasks filters by status and searches title and assignees.
func (m *Memory) ListTasks(_ context.Context, q listing.Query) (listing.Page[entities.Task], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	page := listing.Apply(m.tasks, q, func(t entities.Task) bool {
		if t.Archived || !q.MatchStatus(string(t.Status)) {
			return false
		}
		return q.MatchSearch(append([]string{t.Title}, t.Assignees...)...)
	})
	return listing.Map(page, cloneTask), nil
}

// AllTasks returns every task that is not archived.
func (m *Memory) AllTasks(_ context.Context) ([]entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if !t.Archived {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

// TasksByProject returns the non archived tasks of a project.
func (m *Memory) TasksByProject(_ context.Context, projectID int64) ([]entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Task, 0)
	for _, t := range m.tasks {
		if !t.Archived && t.ProjectID != nil && *t.ProjectID == projectID {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

// GetTask finds a task by id, archived or not.
func (m *Memory) GetTask(_ context.Context, id int64) (*entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.tasks {
		if t.ID == id {
			t := cloneTask(t)
			return &t, nil
		}
	}
	return nil, entities.ErrTaskNotFound
}

// CreateTask stores a task under a new id.
func (m *Memory) CreateTask(_ context.Context, t entities.Task) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t.ID = m.next("task")
	m.tasks = append(m.tasks, cloneTask(t))
	out := cloneTask(t)
	return &out, nil
}

// UpdateTask replaces the task with the same id.
func (m *Memory) UpdateTask(_ context.Context, t entities.Task) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.tasks {
		if existing.ID == t.ID {
			t.CreatedAt = existing.CreatedAt
			t.Archived = existing.Archived
			m.tasks[i] = cloneTask(t)
			out := cloneTask(t)
			return &out, nil
		}
	}
	return nil, entities.ErrTaskNotFound
}

// ArchiveTask hides a task from lists. Archiving twice is a no-op.
func (m *Memory) ArchiveTask(_ context.Context, id int64) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Archived = true
			out := cloneTask(m.tasks[i])
			return &out, nil
		}
	}
	return nil, entities.ErrTaskNotFound
}

// TaskOptions returns id/title pairs of non archived tasks with status.
func (m *Memory) TaskOptions(_ context.Context, status entities.TaskStatus) ([]entities.Option, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Option, 0)
	for _, t := range m.tasks {
		if !t.Archived && t.Status == status {
			out = append(out, entities.Option{ID: strconv.FormatInt(t.ID, 10), Name: t.Title})
		}
	}
	return out, nil
}
