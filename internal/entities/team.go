// Package entities contains core business entities.
package entities

import "time"

// MemberTaskStatus enumerates states of tasks listed on a member profile.
type MemberTaskStatus string

const (
	MemberTaskCompleted  MemberTaskStatus = "Completed"
	MemberTaskInProgress MemberTaskStatus = "In Progress"
	MemberTaskPending    MemberTaskStatus = "Pending"
)

// HistoryType enumerates member history events.
type HistoryType string

const (
	HistoryUnitChange   HistoryType = "Unit Change"
	HistoryStatusUpdate HistoryType = "Status Update"
)

// TeamMember is a person working in a unit.
type TeamMember struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Role         string
	Unit         string
	RegisteredAt time.Time
	Status       ActiveStatus
	Tasks        []MemberTask
	History      []HistoryItem
}

// MemberTask is a task summary on a member profile.
type MemberTask struct {
	ID     int64
	Title  string
	Status MemberTaskStatus
}

// HistoryItem records a unit or status change of a member.
type HistoryItem struct {
	ID   int64
	Type HistoryType
	From string
	To   string
	Date time.Time
}
