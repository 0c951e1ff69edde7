package usecase

import (
	"context"
	"io"
	"time"

	"workio/internal/entities"
	"workio/internal/listing"
	"workio/internal/usecase/domain"
)

// ProjectUsecaseInterface abstracts project operations for the delivery layer.
type ProjectUsecaseInterface interface {
	ListProjects(ctx context.Context, q listing.Query) (listing.Page[entities.Project], error)
	AllProjects(ctx context.Context) ([]entities.Project, error)
	Project(ctx context.Context, projectNo string) (*entities.ProjectDetail, error)
	CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	UpdateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	ActiveProjects(ctx context.Context) ([]entities.Option, error)
}

// TaskUsecaseInterface abstracts task operations.
type TaskUsecaseInterface interface {
	ListTasks(ctx context.Context, q listing.Query) (listing.Page[entities.Task], error)
	Task(ctx context.Context, id int64) (*entities.Task, error)
	CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, t entities.Task) (*entities.Task, error)
	ArchiveTask(ctx context.Context, id int64) (*entities.Task, error)
	InProgressTasks(ctx context.Context) ([]entities.Option, error)
}

// DocumentUsecaseInterface abstracts document review operations.
type DocumentUsecaseInterface interface {
	ListDocuments(ctx context.Context, q listing.Query) (listing.Page[entities.Document], error)
	Document(ctx context.Context, docNo string) (*entities.DocumentDetail, error)
	CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error)
	UpdateDocument(ctx context.Context, d entities.Document) (*entities.Document, error)
	SubmitDocument(ctx context.Context, docNo string) (*entities.Document, error)
	ReviewDocument(ctx context.Context, docNo string, decision domain.ReviewDecision) (*entities.Document, error)
	UploadVersion(ctx context.Context, docNo, version, fileName string) (*entities.DocumentVersion, error)
	AddComment(ctx context.Context, c entities.Comment) (*entities.Comment, error)
	DocumentsByStatus(ctx context.Context, status entities.DocumentStatus) ([]entities.Option, error)
}

// TeamUsecaseInterface abstracts team member operations.
type TeamUsecaseInterface interface {
	ListMembers(ctx context.Context, q listing.Query) (listing.Page[entities.TeamMember], error)
	Member(ctx context.Context, id int64) (*entities.TeamMember, error)
	CreateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error)
	UpdateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error)
	ActiveMembers(ctx context.Context) ([]entities.Option, error)
}

// MasterUsecaseInterface abstracts roles, units and project categories.
type MasterUsecaseInterface interface {
	ListMaster(ctx context.Context, kind entities.MasterKind, q listing.Query) (listing.Page[entities.MasterItem], error)
	CreateMaster(ctx context.Context, item entities.MasterItem) (*entities.MasterItem, error)
	UpdateMaster(ctx context.Context, item entities.MasterItem) (*entities.MasterItem, error)
	MasterOptions(ctx context.Context, kind entities.MasterKind) ([]entities.Option, error)
}

// AccountUsecaseInterface abstracts user account operations.
type AccountUsecaseInterface interface {
	ListAccounts(ctx context.Context, q listing.Query) (listing.Page[entities.Account], error)
	CreateAccount(ctx context.Context, a entities.Account) (*entities.Account, error)
	UpdateAccount(ctx context.Context, a entities.Account) (*entities.Account, error)
}

// AuditUsecaseInterface abstracts the audit trail.
type AuditUsecaseInterface interface {
	ListAudit(ctx context.Context, q listing.Query) (listing.Page[entities.AuditEntry], error)
	ExportAudit(ctx context.Context, w io.Writer, start, end time.Time) (int, error)
}

// ReportUsecaseInterface abstracts downloadable CSV reports.
type ReportUsecaseInterface interface {
	ReportTypes(ctx context.Context) []entities.ReportType
	ExportReport(ctx context.Context, w io.Writer, typ entities.ReportType, start, end time.Time) (int, error)
}

// NotificationUsecaseInterface abstracts the toast feed.
type NotificationUsecaseInterface interface {
	Notifications(ctx context.Context) []entities.Notification
	DismissNotification(ctx context.Context, id string) error
}

// OverviewUsecaseInterface abstracts dashboard counters.
type OverviewUsecaseInterface interface {
	Overview(ctx context.Context, day time.Time) (entities.Overview, error)
}
