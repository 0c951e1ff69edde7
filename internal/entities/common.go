// Package entities contains core business entities.
package entities

// ActiveStatus is the two-state status shared by accounts, members and master data.
type ActiveStatus string

const (
	// StatusActive marks an enabled record.
	StatusActive ActiveStatus = "Active"
	// StatusInactive marks a disabled record.
	StatusInactive ActiveStatus = "Inactive"
)

// Valid reports whether s is a known value.
func (s ActiveStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Priority ranks projects and tasks.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Option is a list-of-values entry used to populate selection inputs.
type Option struct {
	ID   string
	Name string
}
