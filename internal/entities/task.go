// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task states.
type TaskStatus string

const (
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// Valid reports whether s is a known value.
func (s TaskStatus) Valid() bool {
	return s == TaskInProgress || s == TaskCompleted
}

// Task is a unit of work assigned to team members.
type Task struct {
	ID        int64
	Title     string
	CreatedAt time.Time
	DueDate   time.Time
	Priority  Priority
	Status    TaskStatus
	Assignees []string
	ProjectID *int64
	Notes     string
	Archived  bool
}
