// Package entities contains core business entities.
package entities

// Overview aggregates dashboard counters.
type Overview struct {
	ProjectsByStatus    map[ProjectStatus]int
	ProjectsByCategory  map[Category]int
	TasksByStatus       map[TaskStatus]int
	DocumentsByStatus   map[DocumentStatus]int
	TasksDue            []Task
	OpenTasksByAssignee []AssigneeLoad
	CompletedByMonth    [12]int
}

// AssigneeLoad counts open tasks of one assignee.
type AssigneeLoad struct {
	Assignee string
	Open     int
}
