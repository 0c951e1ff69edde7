// Package oapi defines the JSON contract of the dashboard API.
package oapi

// ErrorResponseErrorCode enumerates machine readable error codes.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	INVALIDARGUMENT   ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTFOUND          ErrorResponseErrorCode = "NOT_FOUND"
	CONFLICT          ErrorResponseErrorCode = "CONFLICT"
	INVALIDTRANSITION ErrorResponseErrorCode = "INVALID_TRANSITION"
	UNAVAILABLE       ErrorResponseErrorCode = "UNAVAILABLE"
	INTERNAL          ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the body of every non 2xx JSON response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failure; Fields holds per-field validation messages.
type ErrorBody struct {
	Code    ErrorResponseErrorCode `json:"code"`
	Message string                 `json:"message"`
	Fields  map[string]string      `json:"fields,omitempty"`
}

// Page wraps one page of a list endpoint.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Option is a value of a selection list.
type Option struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Project defines model for Project.
type Project struct {
	Id            int64  `json:"id"`
	ProjectNo     string `json:"project_no"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Owner         string `json:"owner"`
	Client        string `json:"client"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
	PriorityBadge string `json:"priority_badge"`
	Status        string `json:"status"`
	StatusBadge   string `json:"status_badge"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	Budget        int64  `json:"budget"`
	BudgetLabel   string `json:"budget_label"`
	Progress      int    `json:"progress"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// ProjectInput is the create and edit form of a project.
type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Client      string `json:"client"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	// Budget accepts digits with any grouping, e.g. "Rp 50.000".
	Budget   string `json:"budget"`
	Progress int    `json:"progress"`
}

// ProjectDetail defines model for ProjectDetail.
type ProjectDetail struct {
	Project   Project    `json:"project"`
	Tasks     []Task     `json:"tasks"`
	Documents []Document `json:"documents"`
}

// Task defines model for Task.
type Task struct {
	Id            int64    `json:"id"`
	Title         string   `json:"title"`
	CreatedAt     string   `json:"created_at"`
	DueDate       string   `json:"due_date"`
	Priority      string   `json:"priority"`
	PriorityBadge string   `json:"priority_badge"`
	Status        string   `json:"status"`
	StatusBadge   string   `json:"status_badge"`
	Assignees     []string `json:"assignees"`
	ProjectId     *int64   `json:"project_id"`
	Notes         string   `json:"notes"`
	Archived      bool     `json:"archived"`
}

// TaskInput is the create and edit form of a task.
type TaskInput struct {
	Title     string   `json:"title"`
	DueDate   string   `json:"due_date"`
	Priority  string   `json:"priority"`
	Status    string   `json:"status"`
	Assignees []string `json:"assignees"`
	ProjectId *int64   `json:"project_id"`
	Notes     string   `json:"notes"`
}

// Document defines model for Document.
type Document struct {
	Id            int64    `json:"id"`
	DocNo         string   `json:"doc_no"`
	Title         string   `json:"title"`
	ProjectNo     string   `json:"project_no"`
	Status        string   `json:"status"`
	StatusBadge   string   `json:"status_badge"`
	CreatedBy     string   `json:"created_by"`
	SubmittedDate *string  `json:"submitted_date"`
	LastUpdated   string   `json:"last_updated"`
	Reviewers     []string `json:"reviewers"`
	ReviewedBy    string   `json:"reviewed_by,omitempty"`
	Notes         string   `json:"notes"`
	FileName      string   `json:"file_name"`
}

// DocumentInput is the create and edit form of a document.
type DocumentInput struct {
	Title     string   `json:"title"`
	ProjectNo string   `json:"project_no"`
	Reviewers []string `json:"reviewers"`
	Notes     string   `json:"notes"`
	FileName  string   `json:"file_name"`
}

// DocumentVersion defines model for DocumentVersion.
type DocumentVersion struct {
	Id        int64  `json:"id"`
	DocNo     string `json:"doc_no"`
	Version   string `json:"version"`
	UpdatedBy string `json:"updated_by"`
	UpdatedAt string `json:"updated_at"`
	FileUrl   string `json:"file_url"`
}

// VersionInput uploads a new version of a document.
type VersionInput struct {
	Version  string `json:"version"`
	FileName string `json:"file_name"`
}

// Comment defines model for Comment.
type Comment struct {
	Id        int64  `json:"id"`
	DocNo     string `json:"doc_no"`
	Author    string `json:"author"`
	JobTitle  string `json:"job_title"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// CommentInput adds a comment to a document.
type CommentInput struct {
	Author   string `json:"author"`
	JobTitle string `json:"job_title"`
	Message  string `json:"message"`
}

// ReviewInput approves or rejects a submitted document.
type ReviewInput struct {
	Status   string `json:"status"`
	Reviewer string `json:"reviewer"`
	Comment  string `json:"comment"`
}

// DocumentDetail defines model for DocumentDetail.
type DocumentDetail struct {
	Document Document          `json:"document"`
	Versions []DocumentVersion `json:"versions"`
	Comments []Comment         `json:"comments"`
}

// TeamMember defines model for TeamMember.
type TeamMember struct {
	Id           int64         `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Role         string        `json:"role"`
	Unit         string        `json:"unit"`
	RegisteredAt string        `json:"registered_at"`
	Status       string        `json:"status"`
	StatusBadge  string        `json:"status_badge"`
	Tasks        []MemberTask  `json:"tasks"`
	History      []HistoryItem `json:"history"`
}

// MemberTask defines model for MemberTask.
type MemberTask struct {
	Id     int64  `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// HistoryItem defines model for HistoryItem.
type HistoryItem struct {
	Id   int64  `json:"id"`
	Type string `json:"type"`
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

// MemberInput is the create and edit form of a team member.
type MemberInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Unit   string `json:"unit"`
	Status string `json:"status"`
}

// MasterItem defines model for roles, units and project categories.
type MasterItem struct {
	Id          int64  `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	StatusBadge string `json:"status_badge"`
	Icon        string `json:"icon,omitempty"`
	CreatedAt   string `json:"created_at"`
	CreatedBy   string `json:"created_by"`
}

// MasterInput is the add and edit form of master data.
type MasterInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Icon   string `json:"icon"`
}

// Account defines model for Account.
type Account struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	StatusBadge string `json:"status_badge"`
}

// AccountInput is the add and edit form of an account.
type AccountInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// AuditEntry defines model for AuditEntry.
type AuditEntry struct {
	Id          int64  `json:"id"`
	User        string `json:"user"`
	Action      string `json:"action"`
	Module      string `json:"module"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
	StatusBadge string `json:"status_badge"`
}

// Notification defines model for Notification.
type Notification struct {
	Id        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
}

// Overview defines model for Overview.
type Overview struct {
	Date                string         `json:"date"`
	ProjectsByStatus    map[string]int `json:"projects_by_status"`
	ProjectsByCategory  map[string]int `json:"projects_by_category"`
	TasksByStatus       map[string]int `json:"tasks_by_status"`
	DocumentsByStatus   map[string]int `json:"documents_by_status"`
	TasksDue            []Task         `json:"tasks_due"`
	OpenTasksByAssignee []AssigneeLoad `json:"open_tasks_by_assignee"`
	CompletedByMonth    []MonthCount   `json:"completed_by_month"`
}

// AssigneeLoad defines model for AssigneeLoad.
type AssigneeLoad struct {
	Assignee string `json:"assignee"`
	Open     int    `json:"open"`
}

// MonthCount defines model for MonthCount.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ListParams defines parameters shared by list endpoints.
type ListParams struct {
	Status   *string `query:"status"`
	Search   *string `query:"search"`
	Page     *int    `query:"page"`
	PageSize *int    `query:"page_size"`
}

// ListDocumentOptionsParams defines parameters for ListDocumentOptions.
type ListDocumentOptionsParams struct {
	Status string `query:"status"`
}

// ExportAuditTrailParams defines parameters for ExportAuditTrail.
type ExportAuditTrailParams struct {
	Start string `query:"start"`
	End   string `query:"end"`
}

// ExportReportParams defines parameters for ExportReport.
type ExportReportParams struct {
	Type  string `query:"type"`
	Start string `query:"start"`
	End   string `query:"end"`
}

// GetOverviewParams defines parameters for GetOverview.
type GetOverviewParams struct {
	Date *string `query:"date"`
}
