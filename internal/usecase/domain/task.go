package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workio/internal/entities"
	"workio/internal/listing"
)

// ListTasks returns one page of tasks that are not archived.
func (u *Usecase) ListTasks(ctx context.Context, q listing.Query) (listing.Page[entities.Task], error) {
	ctx, end := u.begin(ctx, "ListTasks")
	defer end()

	return u.repo.ListTasks(ctx, normalize(q, listing.TaskPageSize))
}

// Task returns a task by id, including archived ones.
func (u *Usecase) Task(ctx context.Context, id int64) (*entities.Task, error) {
	ctx, end := u.begin(ctx, "Task")
	defer end()

	if id <= 0 {
		return nil, fmt.Errorf("%w: task id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.GetTask(ctx, id)
}

// CreateTask validates and stores a new task.
func (u *Usecase) CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	ctx, end := u.begin(ctx, "CreateTask")
	defer end()

	res, err := u.createTask(ctx, t)
	u.finish(ctx, moduleTasks, "Create Task", err, "Task created successfully")
	return res, err
}

func (u *Usecase) createTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	t = defaultTask(t)
	v := validateTask(t)
	if !t.DueDate.IsZero() && !sameDayOrAfter(t.DueDate, u.now()) {
		v.Add("due_date", "Due date cannot be in the past")
	}
	if err := u.checkTaskProject(ctx, v, t.ProjectID); err != nil {
		return nil, err
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	t.CreatedAt = u.now()
	t.Archived = false
	return u.repo.CreateTask(ctx, t)
}

// UpdateTask rewrites the editable fields of a task.
func (u *Usecase) UpdateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	ctx, end := u.begin(ctx, "UpdateTask")
	defer end()

	res, err := u.updateTask(ctx, t)
	u.finish(ctx, moduleTasks, "Update Task", err, "Task updated successfully")
	return res, err
}

func (u *Usecase) updateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	if _, err := u.repo.GetTask(ctx, t.ID); err != nil {
		return nil, err
	}
	t = defaultTask(t)
	v := validateTask(t)
	if err := u.checkTaskProject(ctx, v, t.ProjectID); err != nil {
		return nil, err
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	return u.repo.UpdateTask(ctx, t)
}

// ArchiveTask hides a task from lists. Archiving an archived task succeeds.
func (u *Usecase) ArchiveTask(ctx context.Context, id int64) (*entities.Task, error) {
	ctx, end := u.begin(ctx, "ArchiveTask")
	defer end()

	res, err := u.repo.ArchiveTask(ctx, id)
	u.finish(ctx, moduleTasks, "Archive Task", err, "Task archived successfully")
	return res, err
}

// InProgressTasks lists open tasks for selection inputs.
func (u *Usecase) InProgressTasks(ctx context.Context) ([]entities.Option, error) {
	ctx, end := u.begin(ctx, "InProgressTasks")
	defer end()

	return u.repo.TaskOptions(ctx, entities.TaskInProgress)
}

func (u *Usecase) checkTaskProject(ctx context.Context, v *entities.ValidationError, projectID *int64) error {
	if projectID == nil {
		v.Add("project_id", "Project is required")
		return nil
	}
	if _, err := u.repo.GetProjectByID(ctx, *projectID); err != nil {
		if errors.Is(err, entities.ErrProjectNotFound) {
			v.Add("project_id", "Project does not exist")
			return nil
		}
		return err
	}
	return nil
}

func defaultTask(t entities.Task) entities.Task {
	t.Title = strings.TrimSpace(t.Title)
	t.Notes = strings.TrimSpace(t.Notes)
	t.Assignees, _ = cleanNames(t.Assignees)
	if t.Priority == "" {
		t.Priority = entities.PriorityMedium
	}
	if t.Status == "" {
		t.Status = entities.TaskInProgress
	}
	return t
}

func validateTask(t entities.Task) *entities.ValidationError {
	v := entities.NewValidationError()
	required(v, "title", t.Title, "Task title is required")
	if len(t.Assignees) == 0 {
		v.Add("assignees", "At least one assignee is required")
	}
	if t.DueDate.IsZero() {
		v.Add("due_date", "Due date is required")
	}
	if !t.Priority.Valid() {
		v.Add("priority", "Priority must be High, Medium or Low")
	}
	if !t.Status.Valid() {
		v.Add("status", "Status must be In Progress or Completed")
	}
	return v
}
