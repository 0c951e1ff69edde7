// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"strings"
	"time"

	"workio/internal/entities"
	"workio/internal/listing"
	"workio/internal/oapi"
	"workio/internal/usecase/domain"
	"workio/pkg/format"
)

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(format.ISODate)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// parseDate reads an optional date field, recording a field error on bad input.
func parseDate(v *entities.ValidationError, field, s string) time.Time {
	if strings.TrimSpace(s) == "" {
		return time.Time{}
	}
	t, ok := format.ParseDate(s)
	if !ok {
		v.Add(field, "Date must be formatted as YYYY-MM-DD")
	}
	return t
}

// ToListingQuery maps list query parameters.
func ToListingQuery(p oapi.ListParams) listing.Query {
	var q listing.Query
	if p.Status != nil {
		q.Status = strings.TrimSpace(*p.Status)
	}
	if p.Search != nil {
		q.Search = strings.TrimSpace(*p.Search)
	}
	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.PageSize != nil {
		q.PageSize = *p.PageSize
	}
	return q
}

// ToOAPIPage maps a page keeping its metadata.
func ToOAPIPage[T, U any](p listing.Page[T], fn func(T) U) oapi.Page[U] {
	m := listing.Map(p, fn)
	return oapi.Page[U]{
		Items:      m.Items,
		Total:      m.Total,
		Page:       m.Page,
		PageSize:   m.PageSize,
		TotalPages: m.TotalPages,
	}
}

// ToOAPIOptions maps selection list values.
func ToOAPIOptions(opts []entities.Option) []oapi.Option {
	res := make([]oapi.Option, 0, len(opts))
	for _, o := range opts {
		res = append(res, oapi.Option{Id: o.ID, Name: o.Name})
	}
	return res
}

// ToOAPIReportTypes maps report types to options keyed by slug.
func ToOAPIReportTypes(types []entities.ReportType) []oapi.Option {
	return mapSlice(types, func(r entities.ReportType) oapi.Option {
		return oapi.Option{Id: r.Slug(), Name: string(r)}
	})
}

// ToOAPIProject maps entities.Project to transport model.
func ToOAPIProject(p entities.Project) oapi.Project {
	return oapi.Project{
		Id:            p.ID,
		ProjectNo:     p.ProjectNo,
		Name:          p.Name,
		Description:   p.Description,
		Owner:         p.Owner,
		Client:        p.Client,
		Category:      string(p.Category),
		Priority:      string(p.Priority),
		PriorityBadge: entities.Badge(string(p.Priority)),
		Status:        string(p.Status),
		StatusBadge:   entities.Badge(string(p.Status)),
		StartDate:     isoDate(p.StartDate),
		EndDate:       isoDate(p.EndDate),
		Budget:        p.Budget,
		BudgetLabel:   format.Rupiah(p.Budget),
		Progress:      p.Progress,
		CreatedAt:     timestamp(p.CreatedAt),
	}
}

// FromOAPIProject builds an entities.Project from the project form.
func FromOAPIProject(projectNo string, src oapi.ProjectInput) (entities.Project, error) {
	v := entities.NewValidationError()
	p := entities.Project{
		ProjectNo:   strings.TrimSpace(projectNo),
		Name:        src.Name,
		Description: src.Description,
		Owner:       src.Owner,
		Client:      src.Client,
		Category:    entities.Category(strings.TrimSpace(src.Category)),
		Priority:    entities.Priority(strings.TrimSpace(src.Priority)),
		Status:      entities.ProjectStatus(strings.TrimSpace(src.Status)),
		StartDate:   parseDate(v, "start_date", src.StartDate),
		EndDate:     parseDate(v, "end_date", src.EndDate),
		Progress:    src.Progress,
	}
	if strings.TrimSpace(src.Budget) != "" {
		n, ok := format.SignedAmount(src.Budget)
		if !ok {
			v.Add("budget", "Budget must be a number")
		}
		p.Budget = n
	}
	return p, v.OrNil()
}

// ToOAPIProjectDetail maps a project with its tasks and documents.
func ToOAPIProjectDetail(d entities.ProjectDetail) oapi.ProjectDetail {
	return oapi.ProjectDetail{
		Project:   ToOAPIProject(d.Project),
		Tasks:     mapSlice(d.Tasks, ToOAPITask),
		Documents: mapSlice(d.Documents, ToOAPIDocument),
	}
}

// ToOAPITask maps entities.Task to transport model.
func ToOAPITask(t entities.Task) oapi.Task {
	assignees := make([]string, len(t.Assignees))
	copy(assignees, t.Assignees)
	return oapi.Task{
		Id:            t.ID,
		Title:         t.Title,
		CreatedAt:     isoDate(t.CreatedAt),
		DueDate:       isoDate(t.DueDate),
		Priority:      string(t.Priority),
		PriorityBadge: entities.Badge(string(t.Priority)),
		Status:        string(t.Status),
		StatusBadge:   entities.Badge(string(t.Status)),
		Assignees:     assignees,
		ProjectId:     t.ProjectID,
		Notes:         t.Notes,
		Archived:      t.Archived,
	}
}

// FromOAPITask builds an entities.Task from the task form.
func FromOAPITask(id int64, src oapi.TaskInput) (entities.Task, error) {
	v := entities.NewValidationError()
	t := entities.Task{
		ID:        id,
		Title:     src.Title,
		DueDate:   parseDate(v, "due_date", src.DueDate),
		Priority:  entities.Priority(strings.TrimSpace(src.Priority)),
		Status:    entities.TaskStatus(strings.TrimSpace(src.Status)),
		Assignees: src.Assignees,
		ProjectID: src.ProjectId,
		Notes:     src.Notes,
	}
	return t, v.OrNil()
}

// ToOAPIDocument maps entities.Document to transport model.
func ToOAPIDocument(d entities.Document) oapi.Document {
	var submitted *string
	if d.SubmittedDate != nil {
		s := isoDate(*d.SubmittedDate)
		submitted = &s
	}
	reviewers := make([]string, len(d.Reviewers))
	copy(reviewers, d.Reviewers)
	return oapi.Document{
		Id:            d.ID,
		DocNo:         d.DocNo,
		Title:         d.Title,
		ProjectNo:     d.ProjectNo,
		Status:        string(d.Status),
		StatusBadge:   entities.Badge(string(d.Status)),
		CreatedBy:     d.CreatedBy,
		SubmittedDate: submitted,
		LastUpdated:   isoDate(d.LastUpdated),
		Reviewers:     reviewers,
		ReviewedBy:    d.ReviewedBy,
		Notes:         d.Notes,
		FileName:      d.FileName,
	}
}

// FromOAPIDocument builds an entities.Document from the document form.
func FromOAPIDocument(docNo string, src oapi.DocumentInput) entities.Document {
	return entities.Document{
		DocNo:     strings.TrimSpace(docNo),
		Title:     src.Title,
		ProjectNo: src.ProjectNo,
		Reviewers: src.Reviewers,
		Notes:     src.Notes,
		FileName:  src.FileName,
	}
}

// ToOAPIDocumentDetail maps a document with its history.
func ToOAPIDocumentDetail(d entities.DocumentDetail) oapi.DocumentDetail {
	return oapi.DocumentDetail{
		Document: ToOAPIDocument(d.Document),
		Versions: mapSlice(d.Versions, ToOAPIVersion),
		Comments: mapSlice(d.Comments, ToOAPIComment),
	}
}

// ToOAPIVersion maps entities.DocumentVersion to transport model.
func ToOAPIVersion(v entities.DocumentVersion) oapi.DocumentVersion {
	return oapi.DocumentVersion{
		Id:        v.ID,
		DocNo:     v.DocNo,
		Version:   v.Version,
		UpdatedBy: v.UpdatedBy,
		UpdatedAt: isoDate(v.UpdatedAt),
		FileUrl:   v.FileURL,
	}
}

// ToOAPIComment maps entities.Comment to transport model.
func ToOAPIComment(c entities.Comment) oapi.Comment {
	return oapi.Comment{
		Id:        c.ID,
		DocNo:     c.DocNo,
		Author:    c.Author,
		JobTitle:  c.JobTitle,
		Message:   c.Message,
		CreatedAt: timestamp(c.CreatedAt),
	}
}

// FromOAPIComment builds an entities.Comment for docNo.
func FromOAPIComment(docNo string, src oapi.CommentInput) entities.Comment {
	return entities.Comment{
		DocNo:    docNo,
		Author:   src.Author,
		JobTitle: src.JobTitle,
		Message:  src.Message,
	}
}

// FromOAPIReview builds a review decision.
func FromOAPIReview(src oapi.ReviewInput) domain.ReviewDecision {
	return domain.ReviewDecision{
		Status:   entities.DocumentStatus(strings.TrimSpace(src.Status)),
		Reviewer: src.Reviewer,
		Comment:  src.Comment,
	}
}

// ToOAPIMember maps entities.TeamMember to transport model.
func ToOAPIMember(m entities.TeamMember) oapi.TeamMember {
	tasks := make([]oapi.MemberTask, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		tasks = append(tasks, oapi.MemberTask{Id: t.ID, Title: t.Title, Status: string(t.Status)})
	}
	history := make([]oapi.HistoryItem, 0, len(m.History))
	for _, h := range m.History {
		history = append(history, oapi.HistoryItem{
			Id:   h.ID,
			Type: string(h.Type),
			From: h.From,
			To:   h.To,
			Date: isoDate(h.Date),
		})
	}
	return oapi.TeamMember{
		Id:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Role:         m.Role,
		Unit:         m.Unit,
		RegisteredAt: isoDate(m.RegisteredAt),
		Status:       string(m.Status),
		StatusBadge:  entities.Badge(string(m.Status)),
		Tasks:        tasks,
		History:      history,
	}
}

// FromOAPIMember builds an entities.TeamMember from the member form.
func FromOAPIMember(id int64, src oapi.MemberInput) entities.TeamMember {
	return entities.TeamMember{
		ID:     id,
		Name:   src.Name,
		Email:  src.Email,
		Phone:  src.Phone,
		Role:   src.Role,
		Unit:   src.Unit,
		Status: entities.ActiveStatus(strings.TrimSpace(src.Status)),
	}
}

var kindAliases = map[string]entities.MasterKind{
	"role":               entities.KindRole,
	"roles":              entities.KindRole,
	"unit":               entities.KindUnit,
	"units":              entities.KindUnit,
	"category":           entities.KindCategory,
	"categories":         entities.KindCategory,
	"project-categories": entities.KindCategory,
}

// MasterKind resolves a path segment such as "roles" to its kind.
// Unknown segments are returned as is and rejected by the usecase.
func MasterKind(s string) entities.MasterKind {
	s = strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindAliases[s]; ok {
		return k
	}
	return entities.MasterKind(s)
}

// ToOAPIMaster maps entities.MasterItem to transport model.
func ToOAPIMaster(it entities.MasterItem) oapi.MasterItem {
	return oapi.MasterItem{
		Id:          it.ID,
		Kind:        string(it.Kind),
		Name:        it.Name,
		Status:      string(it.Status),
		StatusBadge: entities.Badge(string(it.Status)),
		Icon:        it.Icon,
		CreatedAt:   isoDate(it.CreatedAt),
		CreatedBy:   it.CreatedBy,
	}
}

// FromOAPIMaster builds an entities.MasterItem from the master data form.
func FromOAPIMaster(kind entities.MasterKind, id int64, src oapi.MasterInput) entities.MasterItem {
	return entities.MasterItem{
		ID:     id,
		Kind:   kind,
		Name:   src.Name,
		Status: entities.ActiveStatus(strings.TrimSpace(src.Status)),
		Icon:   src.Icon,
	}
}

// ToOAPIAccount maps entities.Account to transport model.
func ToOAPIAccount(a entities.Account) oapi.Account {
	return oapi.Account{
		Id:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Role:        a.Role,
		Status:      string(a.Status),
		StatusBadge: entities.Badge(string(a.Status)),
	}
}

// FromOAPIAccount builds an entities.Account from the account form.
func FromOAPIAccount(id int64, src oapi.AccountInput) entities.Account {
	return entities.Account{
		ID:     id,
		Name:   src.Name,
		Email:  src.Email,
		Role:   src.Role,
		Status: entities.ActiveStatus(strings.TrimSpace(src.Status)),
	}
}

// ToOAPIAudit maps entities.AuditEntry to transport model.
func ToOAPIAudit(e entities.AuditEntry) oapi.AuditEntry {
	return oapi.AuditEntry{
		Id:          e.ID,
		User:        e.User,
		Action:      e.Action,
		Module:      e.Module,
		Timestamp:   format.DateTime(e.Timestamp),
		Status:      string(e.Status),
		StatusBadge: entities.Badge(string(e.Status)),
	}
}

// ToOAPINotification maps entities.Notification to transport model.
func ToOAPINotification(n entities.Notification) oapi.Notification {
	return oapi.Notification{
		Id:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		CreatedAt: timestamp(n.CreatedAt),
		ExpiresAt: timestamp(n.ExpiresAt),
	}
}

// ToOAPIOverview maps the dashboard counters computed for day.
func ToOAPIOverview(day time.Time, src entities.Overview) oapi.Overview {
	out := oapi.Overview{
		Date:                isoDate(day),
		ProjectsByStatus:    countMap(src.ProjectsByStatus),
		ProjectsByCategory:  countMap(src.ProjectsByCategory),
		TasksByStatus:       countMap(src.TasksByStatus),
		DocumentsByStatus:   countMap(src.DocumentsByStatus),
		TasksDue:            mapSlice(src.TasksDue, ToOAPITask),
		OpenTasksByAssignee: make([]oapi.AssigneeLoad, 0, len(src.OpenTasksByAssignee)),
		CompletedByMonth:    make([]oapi.MonthCount, 0, len(src.CompletedByMonth)),
	}
	for _, l := range src.OpenTasksByAssignee {
		out.OpenTasksByAssignee = append(out.OpenTasksByAssignee, oapi.AssigneeLoad{Assignee: l.Assignee, Open: l.Open})
	}
	for i, n := range src.CompletedByMonth {
		out.CompletedByMonth = append(out.CompletedByMonth, oapi.MonthCount{
			Month: time.Month(i + 1).String()[:3],
			Count: n,
		})
	}
	return out
}

func countMap[K ~string](src map[K]int) map[string]int {
	out := make(map[string]int, len(src))
	for k, n := range src {
		out[string(k)] = n
	}
	return out
}

func mapSlice[T, U any](src []T, fn func(T) U) []U {
	out := make([]U, 0, len(src))
	for _, v := range src {
		out = append(out, fn(v))
	}
	return out
}
