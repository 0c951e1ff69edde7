// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"workio/internal/entities"
	"workio/internal/fixtures"
	"workio/internal/listing"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// SeedInterface replaces the stored data with a dataset.
type SeedInterface interface {
	Seed(ctx context.Context, ds fixtures.Dataset) error
}

// ProjectInterface exposes project operations.
type ProjectInterface interface {
	ListProjects(ctx context.Context, q listing.Query) (listing.Page[entities.Project], error)
	AllProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, projectNo string) (*entities.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*entities.Project, error)
	CountProjectNumbers(ctx context.Context, prefix string) (int, error)
	CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	UpdateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	ProjectOptions(ctx context.Context, status entities.ProjectStatus) ([]entities.Option, error)
}

// TaskInterface exposes task operations. Archived tasks are excluded from
// everything but GetTask.
type TaskInterface interface {
	ListTasks(ctx context.Context, q listing.Query) (listing.Page[entities.Task], error)
	AllTasks(ctx context.Context) ([]entities.Task, error)
	TasksByProject(ctx context.Context, projectID int64) ([]entities.Task, error)
	GetTask(ctx context.Context, id int64) (*entities.Task, error)
	CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, t entities.Task) (*entities.Task, error)
	ArchiveTask(ctx context.Context, id int64) (*entities.Task, error)
	TaskOptions(ctx context.Context, status entities.TaskStatus) ([]entities.Option, error)
}

// DocumentInterface exposes document, version and comment operations.
type DocumentInterface interface {
	ListDocuments(ctx context.Context, q listing.Query) (listing.Page[entities.Document], error)
	DocumentsByProject(ctx context.Context, projectNo string) ([]entities.Document, error)
	CountDocumentsByStatus(ctx context.Context) (map[entities.DocumentStatus]int, error)
	GetDocument(ctx context.Context, docNo string) (*entities.Document, error)
	CountDocumentNumbers(ctx context.Context, prefix string) (int, error)
	CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error)
	UpdateDocument(ctx context.Context, d entities.Document) (*entities.Document, error)
	ListVersions(ctx context.Context, docNo string) ([]entities.DocumentVersion, error)
	AddVersion(ctx context.Context, v entities.DocumentVersion) (*entities.DocumentVersion, error)
	ListComments(ctx context.Context, docNo string) ([]entities.Comment, error)
	AddComment(ctx context.Context, c entities.Comment) (*entities.Comment, error)
	DocumentOptions(ctx context.Context, status entities.DocumentStatus) ([]entities.Option, error)
}

// MemberInterface exposes team member operations.
type MemberInterface interface {
	ListMembers(ctx context.Context, q listing.Query) (listing.Page[entities.TeamMember], error)
	GetMember(ctx context.Context, id int64) (*entities.TeamMember, error)
	CreateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error)
	UpdateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error)
	MemberOptions(ctx context.Context, status entities.ActiveStatus) ([]entities.Option, error)
}

// AccountInterface exposes user account operations. Lists are newest first.
type AccountInterface interface {
	ListAccounts(ctx context.Context, q listing.Query) (listing.Page[entities.Account], error)
	GetAccount(ctx context.Context, id int64) (*entities.Account, error)
	CreateAccount(ctx context.Context, a entities.Account) (*entities.Account, error)
	UpdateAccount(ctx context.Context, a entities.Account) (*entities.Account, error)
}

// MasterInterface exposes roles, units and categories. Lists are newest first.
type MasterInterface interface {
	ListMaster(ctx context.Context, kind entities.MasterKind, q listing.Query) (listing.Page[entities.MasterItem], error)
	GetMaster(ctx context.Context, kind entities.MasterKind, id int64) (*entities.MasterItem, error)
	CreateMaster(ctx context.Context, item entities.MasterItem) (*entities.MasterItem, error)
	UpdateMaster(ctx context.Context, item entities.MasterItem) (*entities.MasterItem, error)
	MasterOptions(ctx context.Context, kind entities.MasterKind, status entities.ActiveStatus) ([]entities.Option, error)
}

// AuditInterface exposes the audit trail. Lists are newest first.
type AuditInterface interface {
	ListAudit(ctx context.Context, q listing.Query) (listing.Page[entities.AuditEntry], error)
	AppendAudit(ctx context.Context, e entities.AuditEntry) (*entities.AuditEntry, error)
	AuditBetween(ctx context.Context, from, to time.Time) ([]entities.AuditEntry, error)
}
