// Package entities contains core business entities.
package entities

import "time"

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectInactive  ProjectStatus = "Inactive"
	ProjectCompleted ProjectStatus = "Completed"
)

// Valid reports whether s is a known value.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectInactive, ProjectCompleted:
		return true
	}
	return false
}

// Category classifies a project.
type Category string

const (
	CategoryWebApp       Category = "Web App"
	CategoryMobileApp    Category = "Mobile App"
	CategoryInternalTool Category = "Internal Tool"
)

// Categories lists categories in display order.
var Categories = []Category{CategoryWebApp, CategoryMobileApp, CategoryInternalTool}

// Prefix returns the project number prefix of the category.
func (c Category) Prefix() string {
	switch c {
	case CategoryWebApp:
		return "WEB"
	case CategoryMobileApp:
		return "MOB"
	case CategoryInternalTool:
		return "INT"
	}
	return ""
}

// Valid reports whether c is a known value.
func (c Category) Valid() bool { return c.Prefix() != "" }

// Project is a domain model of a managed project.
type Project struct {
	ID          int64
	ProjectNo   string
	Name        string
	Description string
	Owner       string
	Client      string
	Category    Category
	Priority    Priority
	Status      ProjectStatus
	StartDate   time.Time
	EndDate     time.Time
	Budget      int64
	Progress    int
	CreatedAt   time.Time
}

// ProjectDetail bundles a project with its related tasks and documents.
type ProjectDetail struct {
	Project   Project
	Tasks     []Task
	Documents []Document
}
