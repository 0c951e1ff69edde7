package domain

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"workio/internal/entities"
	"workio/internal/fixtures"
	"workio/internal/listing"
	"workio/internal/notify"
	"workio/internal/repository"
	"workio/internal/repository/memory"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, time.September, 20, 10, 0, 0, 0, time.UTC)

type repoMock struct {
	repository.Repository
	mock.Mock
}

func (m *repoMock) CountProjectNumbers(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *repoMock) CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) AppendAudit(ctx context.Context, e entities.AuditEntry) (*entities.AuditEntry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuditEntry), args.Error(1)
}

func newSeeded(t *testing.T) (*Usecase, *notify.Center) {
	t.Helper()

	repo := memory.New(zap.NewNop().Sugar())
	require.NoError(t, repo.Seed(context.Background(), fixtures.MustLoad()))
	center := notify.New(zap.NewNop().Sugar(), time.Minute, time.Second)

	uc := New(zap.NewNop().Sugar(), context.Background(), repo, center, time.Second)
	uc.now = func() time.Time { return fixedNow }
	return uc, center
}

func newMocked(repo *repoMock) *Usecase {
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, nil, time.Second)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func validProject() entities.Project {
	return entities.Project{
		Name:        "Partner Portal",
		Description: "Self service portal for partners",
		Client:      "Acme",
		Category:    entities.CategoryWebApp,
		StartDate:   fixedNow,
		EndDate:     fixedNow.AddDate(0, 2, 0),
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestUsecase_CreateProjectValidation(t *testing.T) {
	repo := &repoMock{}
	repo.On("AppendAudit", mock.Anything, mock.MatchedBy(func(e entities.AuditEntry) bool {
		return e.Status == entities.AuditFailed && e.Module == moduleProjects
	})).Return(&entities.AuditEntry{ID: 1}, nil)
	uc := newMocked(repo)

	_, err := uc.CreateProject(context.Background(), entities.Project{StartDate: fixedNow, EndDate: fixedNow.AddDate(0, 0, -1), Budget: -5000})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	fields := fieldsOf(t, err)
	for _, f := range []string{"name", "description", "client", "category", "end_date", "budget"} {
		require.Contains(t, fields, f)
	}
	repo.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateProjectRetriesTakenNumber(t *testing.T) {
	repo := &repoMock{}
	repo.On("AppendAudit", mock.Anything, mock.Anything).Return(&entities.AuditEntry{ID: 1}, nil)
	repo.On("CountProjectNumbers", mock.Anything, "PRJ-WEB-202509-").Return(0, nil)
	repo.On("CreateProject", mock.Anything, mock.MatchedBy(func(p entities.Project) bool {
		return p.ProjectNo == "PRJ-WEB-202509-001"
	})).Return(nil, entities.ErrConflict).Once()
	repo.On("CreateProject", mock.Anything, mock.MatchedBy(func(p entities.Project) bool {
		return p.ProjectNo == "PRJ-WEB-202509-002"
	})).Return(&entities.Project{ID: 9, ProjectNo: "PRJ-WEB-202509-002"}, nil).Once()
	uc := newMocked(repo)

	p, err := uc.CreateProject(context.Background(), validProject())
	require.NoError(t, err)
	require.Equal(t, "PRJ-WEB-202509-002", p.ProjectNo)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateProjectNumbersAndAudits(t *testing.T) {
	uc, center := newSeeded(t)
	ctx := entities.WithActor(context.Background(), "Alice Johnson")

	p, err := uc.CreateProject(ctx, validProject())
	require.NoError(t, err)
	require.Equal(t, "PRJ-WEB-202509-003", p.ProjectNo)
	require.Equal(t, entities.PriorityMedium, p.Priority)
	require.Equal(t, entities.ProjectActive, p.Status)

	audit, err := uc.ListAudit(ctx, listing.Query{Search: "alice johnson"})
	require.NoError(t, err)
	require.Equal(t, 1, audit.Total)
	require.Equal(t, "Create Project", audit.Items[0].Action)
	require.Equal(t, "Alice Johnson", audit.Items[0].User)
	require.Equal(t, entities.AuditSuccess, audit.Items[0].Status)

	toasts := center.Active()
	require.Len(t, toasts, 1)
	require.Equal(t, entities.NotifySuccess, toasts[0].Type)
}

func TestUsecase_UpdateProjectKeepsNumber(t *testing.T) {
	uc, _ := newSeeded(t)

	p := validProject()
	p.ProjectNo = "PRJ-MOB-202509-002"
	p.Status = entities.ProjectCompleted
	updated, err := uc.UpdateProject(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, int64(2), updated.ID)
	require.Equal(t, "PRJ-MOB-202509-002", updated.ProjectNo)
	require.Equal(t, entities.ProjectCompleted, updated.Status)

	p.ProjectNo = "PRJ-MOB-209901-001"
	_, err = uc.UpdateProject(context.Background(), p)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

func TestUsecase_ProjectDetail(t *testing.T) {
	uc, _ := newSeeded(t)

	detail, err := uc.Project(context.Background(), "PRJ-WEB-202509-001")
	require.NoError(t, err)
	require.Len(t, detail.Tasks, 4)
	require.Len(t, detail.Documents, 24)

	_, err = uc.Project(context.Background(), " ")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_CreateTaskValidation(t *testing.T) {
	uc, center := newSeeded(t)
	missing := int64(99)

	_, err := uc.CreateTask(context.Background(), entities.Task{
		Title:     "Ship it",
		Assignees: []string{" "},
		DueDate:   fixedNow.AddDate(0, 0, -1),
		ProjectID: &missing,
	})
	fields := fieldsOf(t, err)
	require.Equal(t, "At least one assignee is required", fields["assignees"])
	require.Equal(t, "Due date cannot be in the past", fields["due_date"])
	require.Equal(t, "Project does not exist", fields["project_id"])

	toasts := center.Active()
	require.Len(t, toasts, 1)
	require.Equal(t, entities.NotifyError, toasts[0].Type)
}

func TestUsecase_CreateTaskDueToday(t *testing.T) {
	uc, _ := newSeeded(t)
	project := int64(1)

	task, err := uc.CreateTask(context.Background(), entities.Task{
		Title:     "Ship it",
		Assignees: []string{"Nadia", "Rizky"},
		DueDate:   time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC),
		ProjectID: &project,
	})
	require.NoError(t, err)
	require.Equal(t, int64(13), task.ID)
	require.Equal(t, entities.TaskInProgress, task.Status)
	require.Equal(t, fixedNow, task.CreatedAt)
}

func TestUsecase_ArchiveTaskIdempotent(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()

	_, err := uc.ArchiveTask(ctx, 3)
	require.NoError(t, err)
	_, err = uc.ArchiveTask(ctx, 3)
	require.NoError(t, err)

	task, err := uc.Task(ctx, 3)
	require.NoError(t, err)
	require.True(t, task.Archived)

	page, err := uc.ListTasks(ctx, listing.Query{})
	require.NoError(t, err)
	require.Equal(t, 11, page.Total)
	require.Equal(t, listing.TaskPageSize, page.PageSize)
}

func TestUsecase_DocumentLifecycle(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := entities.WithActor(context.Background(), "Firda Rosiana")

	doc, err := uc.CreateDocument(ctx, entities.Document{
		Title:     "Release Checklist",
		ProjectNo: "PRJ-WEB-202509-001",
		Reviewers: []string{"Andi Pratama"},
	})
	require.NoError(t, err)
	require.Equal(t, "DOC-202509-001", doc.DocNo)
	require.Equal(t, entities.DocumentDraft, doc.Status)
	require.Equal(t, "Firda Rosiana", doc.CreatedBy)

	_, err = uc.ReviewDocument(ctx, doc.DocNo, ReviewDecision{Status: entities.DocumentApproved, Reviewer: "Andi Pratama"})
	require.ErrorIs(t, err, entities.ErrInvalidTransition)

	submitted, err := uc.SubmitDocument(ctx, doc.DocNo)
	require.NoError(t, err)
	require.Equal(t, entities.DocumentSubmitted, submitted.Status)
	require.NotNil(t, submitted.SubmittedDate)

	_, err = uc.SubmitDocument(ctx, doc.DocNo)
	require.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = uc.ReviewDocument(ctx, doc.DocNo, ReviewDecision{Status: entities.DocumentApproved, Reviewer: "Budi Santoso"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.ReviewDocument(ctx, doc.DocNo, ReviewDecision{Status: entities.DocumentSubmitted, Reviewer: "Andi Pratama"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	approved, err := uc.ReviewDocument(ctx, doc.DocNo, ReviewDecision{
		Status: entities.DocumentApproved, Reviewer: "andi pratama", Comment: "Looks good",
	})
	require.NoError(t, err)
	require.Equal(t, entities.DocumentApproved, approved.Status)
	require.Equal(t, "andi pratama", approved.ReviewedBy)

	detail, err := uc.Document(ctx, doc.DocNo)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	require.Equal(t, "Looks good", detail.Comments[0].Message)
}

func TestUsecase_DocumentReviewersValidation(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()

	_, err := uc.CreateDocument(ctx, entities.Document{
		Title: "Design brief", ProjectNo: "PRJ-WEB-202509-001", Reviewers: []string{"A", "B", "C"},
	})
	require.Equal(t, "At most 2 reviewers are allowed", fieldsOf(t, err)["reviewers"])

	_, err = uc.CreateDocument(ctx, entities.Document{
		Title: "Design brief", ProjectNo: "PRJ-WEB-202509-001", Reviewers: []string{"A", "a"},
	})
	require.Equal(t, "Reviewers must be distinct", fieldsOf(t, err)["reviewers"])

	_, err = uc.CreateDocument(ctx, entities.Document{Title: "Design brief", ProjectNo: "PRJ-NOPE", Reviewers: []string{"A"}})
	require.Equal(t, "Project does not exist", fieldsOf(t, err)["project_no"])
}

func TestUsecase_UploadVersion(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := entities.WithActor(context.Background(), "Bob")

	v, err := uc.UploadVersion(ctx, "DOC-2025-001", "v2.0", "brief-v2.pdf")
	require.NoError(t, err)
	require.Equal(t, "/files/DOC-2025-001/brief-v2.pdf", v.FileURL)
	require.Equal(t, "Bob", v.UpdatedBy)

	_, err = uc.UploadVersion(ctx, "DOC-2025-001", "v1.1", "again.pdf")
	require.ErrorIs(t, err, entities.ErrConflict)

	_, err = uc.UploadVersion(ctx, "DOC-2025-001", "", "")
	fields := fieldsOf(t, err)
	require.Contains(t, fields, "version")
	require.Contains(t, fields, "file_name")

	detail, err := uc.Document(ctx, "DOC-2025-001")
	require.NoError(t, err)
	require.Equal(t, "v2.0", detail.Versions[0].Version)
	require.Equal(t, "brief-v2.pdf", detail.Document.FileName)
}

func TestUsecase_UpdateMemberRecordsHistory(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()

	m, err := uc.Member(ctx, 3)
	require.NoError(t, err)
	m.Unit = "Data & Analytics"
	m.Status = entities.StatusInactive

	updated, err := uc.UpdateMember(ctx, *m)
	require.NoError(t, err)
	require.Len(t, updated.History, 2)
	require.Equal(t, entities.HistoryUnitChange, updated.History[0].Type)
	require.Equal(t, "Product Design", updated.History[0].From)
	require.Equal(t, entities.HistoryStatusUpdate, updated.History[1].Type)
	require.Equal(t, "Inactive", updated.History[1].To)

	m.Unit = "Space Program"
	_, err = uc.UpdateMember(ctx, *m)
	require.Equal(t, "Unit does not exist", fieldsOf(t, err)["unit"])
}

func TestUsecase_CreateMemberValidation(t *testing.T) {
	uc, _ := newSeeded(t)

	_, err := uc.CreateMember(context.Background(), entities.TeamMember{Name: "Gina", Email: "gina@", Role: "Lead"})
	fields := fieldsOf(t, err)
	require.Equal(t, "Email format is invalid", fields["email"])
	require.Equal(t, "Phone number is required", fields["phone"])
	require.Equal(t, "Unit is required", fields["unit"])
}

func TestUsecase_Accounts(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()

	_, err := uc.CreateAccount(ctx, entities.Account{Name: "Gina", Email: "not-an-email", Role: "Officer"})
	require.Contains(t, fieldsOf(t, err), "email")

	_, err = uc.CreateAccount(ctx, entities.Account{Name: "Gina", Email: "alice@example.com", Role: "Officer"})
	require.ErrorIs(t, err, entities.ErrConflict)

	created, err := uc.CreateAccount(ctx, entities.Account{Name: "Gina", Email: "gina@example.com", Role: "Officer"})
	require.NoError(t, err)
	require.Equal(t, entities.StatusActive, created.Status)

	page, err := uc.ListAccounts(ctx, listing.Query{})
	require.NoError(t, err)
	require.Equal(t, created.ID, page.Items[0].ID)
}

func TestUsecase_Master(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()

	_, err := uc.ListMaster(ctx, "department", listing.Query{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateMaster(ctx, entities.MasterItem{Kind: entities.KindUnit, Name: "product design"})
	require.ErrorIs(t, err, entities.ErrConflict)

	cat, err := uc.CreateMaster(ctx, entities.MasterItem{Kind: entities.KindCategory, Name: "Data Platform"})
	require.NoError(t, err)
	require.Equal(t, "Monitor", cat.Icon)

	_, err = uc.CreateMaster(ctx, entities.MasterItem{Kind: entities.KindCategory, Name: "AI", Icon: "Rocket"})
	require.Contains(t, fieldsOf(t, err), "icon")

	page, err := uc.ListMaster(ctx, entities.KindCategory, listing.Query{})
	require.NoError(t, err)
	require.Equal(t, listing.CategoryPageSize, page.PageSize)
	require.Equal(t, "Data Platform", page.Items[0].Name)
}

func TestUsecase_ExportAudit(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.ExportAudit(ctx, &bytes.Buffer{}, day, day.AddDate(0, 0, -1))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	var buf bytes.Buffer
	n, err := uc.ExportAudit(ctx, &buf, day, day)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, auditCSVHeader, records[0])
}

func TestUsecase_Overview(t *testing.T) {
	uc, _ := newSeeded(t)

	ov, err := uc.Overview(context.Background(), time.Date(2024, time.September, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 3, ov.ProjectsByStatus[entities.ProjectActive])
	require.Equal(t, 2, ov.ProjectsByCategory[entities.CategoryMobileApp])
	require.Equal(t, 7, ov.TasksByStatus[entities.TaskInProgress])
	require.Equal(t, 18, ov.DocumentsByStatus[entities.DocumentRejected])
	require.Len(t, ov.TasksDue, 2)
	require.Equal(t, 2, ov.CompletedByMonth[time.September-1])
	require.Equal(t, 3, ov.CompletedByMonth[time.October-1])
	require.Len(t, ov.OpenTasksByAssignee, 7)
	require.Equal(t, "Alicia", ov.OpenTasksByAssignee[0].Assignee)
}

func TestUsecase_DismissNotification(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()

	_, err := uc.ArchiveTask(ctx, 1)
	require.NoError(t, err)

	toasts := uc.Notifications(ctx)
	require.Len(t, toasts, 1)
	require.NoError(t, uc.DismissNotification(ctx, toasts[0].ID))
	require.Empty(t, uc.Notifications(ctx))
	require.ErrorIs(t, uc.DismissNotification(ctx, toasts[0].ID), entities.ErrNotificationNotFound)
	require.ErrorIs(t, uc.DismissNotification(ctx, ""), entities.ErrInvalidArgument)
}

func TestUsecase_UpdateKeepsStatusWhenBlank(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()

	bob, err := uc.Member(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, entities.StatusInactive, bob.Status)
	bob.Status = ""
	bob.Phone = "08190000000"

	updated, err := uc.UpdateMember(ctx, *bob)
	require.NoError(t, err)
	require.Equal(t, entities.StatusInactive, updated.Status)
	require.Empty(t, updated.History)

	account, err := uc.UpdateAccount(ctx, entities.Account{ID: 2, Name: "Bob Smith", Email: "bob@example.com", Role: "Officer"})
	require.NoError(t, err)
	require.Equal(t, entities.StatusInactive, account.Status)

	cat, err := uc.CreateMaster(ctx, entities.MasterItem{Kind: entities.KindCategory, Name: "Kiosk", Icon: "Wrench", Status: entities.StatusInactive})
	require.NoError(t, err)
	renamed, err := uc.UpdateMaster(ctx, entities.MasterItem{ID: cat.ID, Kind: entities.KindCategory, Name: "Kiosk App"})
	require.NoError(t, err)
	require.Equal(t, entities.StatusInactive, renamed.Status)
	require.Equal(t, "Wrench", renamed.Icon)
}

func TestUsecase_ExportReport(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	for _, tc := range []struct {
		typ        entities.ReportType
		start, end time.Time
		header     []string
		rows       int
	}{
		{entities.ReportMasterData, day(2025, time.January, 1), day(2025, time.January, 1), masterCSVHeader, 3},
		{entities.ReportDocuments, day(2025, time.September, 10), day(2025, time.September, 10), documentCSVHeader, 4},
		{entities.ReportTransactions, day(2025, time.September, 1), day(2025, time.September, 1), auditCSVHeader, 2},
		{entities.ReportUsers, day(2024, time.February, 1), day(2024, time.February, 29), userCSVHeader, 2},
	} {
		var buf bytes.Buffer
		n, err := uc.ExportReport(ctx, &buf, tc.typ, tc.start, tc.end)
		require.NoError(t, err, tc.typ)
		require.Equal(t, tc.rows, n, tc.typ)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Equal(t, tc.header, records[0])
		require.Len(t, records, tc.rows+1)
	}

	_, err := uc.ExportReport(ctx, &bytes.Buffer{}, "Invoices", day(2025, time.January, 1), day(2025, time.January, 1))
	require.Contains(t, fieldsOf(t, err), "type")

	_, err = uc.ExportReport(ctx, &bytes.Buffer{}, entities.ReportUsers, day(2025, time.January, 2), day(2025, time.January, 1))
	require.Contains(t, fieldsOf(t, err), "end")
	require.Len(t, uc.ReportTypes(ctx), 4)
}
