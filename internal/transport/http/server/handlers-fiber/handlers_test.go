package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"workio/internal/fixtures"
	"workio/internal/notify"
	api "workio/internal/oapi"
	"workio/internal/repository/memory"
	"workio/internal/transport/http/middleware"
	"workio/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zap.NewNop().Sugar()

	repo := memory.New(log)
	require.NoError(t, repo.Seed(context.Background(), fixtures.MustLoad()))
	center := notify.New(log, time.Minute, time.Second)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(middleware.Actor())
	api.RegisterHandlers(app, NewHandler(log, usecase.New(log, context.Background(), repo, center, time.Second)))
	return app
}

func call(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderActor, "Alice Johnson")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestProjectsEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/v1/projects?status=Active", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[api.Page[api.Project]](t, resp)
	require.Equal(t, 3, page.Total)
	require.Equal(t, 5, page.PageSize)

	resp = call(t, app, http.MethodGet, "/api/v1/projects?page=abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/v1/projects?page=2000000000000000001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	far := decode[api.Page[api.Project]](t, resp)
	require.Empty(t, far.Items)
	require.Equal(t, 5, far.Total)

	resp = call(t, app, http.MethodGet, "/api/v1/projects/PRJ-WEB-202509-001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decode[api.ProjectDetail](t, resp)
	require.Len(t, detail.Tasks, 4)
	require.Equal(t, "Rp 50.000", detail.Project.BudgetLabel)

	resp = call(t, app, http.MethodGet, "/api/v1/projects/PRJ-NOPE", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProjectEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := call(t, app, http.MethodPost, "/api/v1/projects", api.ProjectInput{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[api.ErrorResponse](t, resp)
	require.Contains(t, errBody.Error.Fields, "name")
	require.Contains(t, errBody.Error.Fields, "category")

	resp = call(t, app, http.MethodPost, "/api/v1/projects", api.ProjectInput{
		Name:        "Partner Portal",
		Description: "Self service portal",
		Client:      "Acme",
		Category:    "Web App",
		Budget:      "Rp 25.000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[struct {
		Project api.Project `json:"project"`
	}](t, resp)
	require.True(t, strings.HasPrefix(created.Project.ProjectNo, "PRJ-WEB-"+time.Now().Format("200601")+"-"))
	require.Equal(t, int64(25000), created.Project.Budget)

	resp = call(t, app, http.MethodGet, "/api/v1/audit-trail?search=alice+johnson", nil)
	audit := decode[api.Page[api.AuditEntry]](t, resp)
	require.Equal(t, 2, audit.Total)
	require.Equal(t, "Create Project", audit.Items[0].Action)

	resp = call(t, app, http.MethodGet, "/api/v1/notifications", nil)
	toasts := decode[[]api.Notification](t, resp)
	require.Len(t, toasts, 2)

	resp = call(t, app, http.MethodDelete, "/api/v1/notifications/"+toasts[0].Id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = call(t, app, http.MethodDelete, "/api/v1/notifications/"+toasts[0].Id, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTaskEndpoints(t *testing.T) {
	app := newTestApp(t)
	project := int64(1)

	resp := call(t, app, http.MethodPost, "/api/v1/tasks", api.TaskInput{
		Title:     "Write release notes",
		DueDate:   time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Assignees: []string{"Nadia"},
		ProjectId: &project,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/v1/tasks/2/archive", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/v1/tasks", nil)
	page := decode[api.Page[api.Task]](t, resp)
	require.Equal(t, 12, page.Total)

	resp = call(t, app, http.MethodGet, "/api/v1/tasks/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, decode[api.Task](t, resp).Archived)

	resp = call(t, app, http.MethodGet, "/api/v1/tasks/zero", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDocumentWorkflowEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := call(t, app, http.MethodPost, "/api/v1/documents/DOC-2025-001/submit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := decode[struct {
		Document api.Document `json:"document"`
	}](t, resp)
	require.Equal(t, "Submitted", doc.Document.Status)
	require.NotNil(t, doc.Document.SubmittedDate)

	resp = call(t, app, http.MethodPost, "/api/v1/documents/DOC-2025-001/submit", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, api.INVALIDTRANSITION, decode[api.ErrorResponse](t, resp).Error.Code)

	resp = call(t, app, http.MethodPost, "/api/v1/documents/DOC-2025-001/review", api.ReviewInput{
		Status: "Rejected", Reviewer: "Andi Pratama", Comment: "Missing budget table",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/v1/documents/DOC-2025-001/versions", api.VersionInput{Version: "v1.0", FileName: "brief.pdf"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/v1/documents/DOC-2025-001", nil)
	detail := decode[api.DocumentDetail](t, resp)
	require.Equal(t, "Rejected", detail.Document.Status)
	require.Equal(t, "Missing budget table", detail.Comments[0].Message)

	resp = call(t, app, http.MethodGet, "/api/v1/lov/documents", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/v1/lov/documents?status=Approved", nil)
	require.Len(t, decode[[]api.Option](t, resp), 18)
}

func TestMasterAndAccountEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/v1/master/roles", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	roles := decode[api.Page[api.MasterItem]](t, resp)
	require.Equal(t, 6, roles.Total)
	require.Equal(t, 10, roles.PageSize)

	resp = call(t, app, http.MethodGet, "/api/v1/master/accounts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 5, decode[api.Page[api.Account]](t, resp).Total)

	resp = call(t, app, http.MethodGet, "/api/v1/master/departments", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/v1/master/units", api.MasterInput{Name: " backend developer "})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = call(t, app, http.MethodPut, "/api/v1/master/accounts/2", api.AccountInput{
		Name: "Bob Smith", Email: "bob@example.com", Role: "Manager", Status: "Active",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/v1/lov/master/units", nil)
	require.Len(t, decode[[]api.Option](t, resp), 7)
}

func TestExportAuditEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/v1/audit-trail/export?start=2025-09-01&end=2025-09-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "audit-trail_2025-09-01_2025-09-01.csv")

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	resp = call(t, app, http.MethodGet, "/api/v1/audit-trail/export?start=2025-09-02&end=2025-09-01", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/v1/audit-trail/export?start=01-09-2025&end=2025-09-01", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decode[api.ErrorResponse](t, resp).Error.Fields, "start")
}

func TestOverviewEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/v1/overview?date=2024-09-28", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ov := decode[api.Overview](t, resp)
	require.Equal(t, "2024-09-28", ov.Date)
	require.Len(t, ov.TasksDue, 2)
	require.Equal(t, 3, ov.ProjectsByStatus["Active"])
	require.Len(t, ov.CompletedByMonth, 12)
	require.Equal(t, 3, ov.CompletedByMonth[9].Count)
}

func TestTeamEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/v1/teams?status=Inactive", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[api.Page[api.TeamMember]](t, resp)
	require.Equal(t, 2, page.Total)
	for _, m := range page.Items {
		require.Equal(t, "Inactive", m.Status)
	}

	resp = call(t, app, http.MethodPost, "/api/v1/teams", api.MemberInput{
		Name: "Gina", Email: "gina@", Phone: "0812000111", Role: "Lead", Unit: "Backend Developer",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Email format is invalid", decode[api.ErrorResponse](t, resp).Error.Fields["email"])

	resp = call(t, app, http.MethodPost, "/api/v1/teams", api.MemberInput{
		Name: "Gina", Email: "gina@example.com", Phone: "0812000111", Role: "Lead", Unit: "Space Program",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Unit does not exist", decode[api.ErrorResponse](t, resp).Error.Fields["unit"])

	resp = call(t, app, http.MethodGet, "/api/v1/teams/3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	charlie := decode[api.TeamMember](t, resp)
	require.Equal(t, "Product Design", charlie.Unit)

	resp = call(t, app, http.MethodPut, "/api/v1/teams/3", api.MemberInput{
		Name: charlie.Name, Email: charlie.Email, Phone: charlie.Phone, Role: charlie.Role,
		Unit: "Data & Analytics", Status: "Inactive",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[struct {
		Member api.TeamMember `json:"member"`
	}](t, resp).Member
	require.Equal(t, "Inactive", updated.Status)
	require.Len(t, updated.History, 2)
	require.Equal(t, "Unit Change", updated.History[0].Type)
	require.Equal(t, "Product Design", updated.History[0].From)
	require.Equal(t, "Data & Analytics", updated.History[0].To)
	require.Equal(t, "Status Update", updated.History[1].Type)
	require.Equal(t, "Active", updated.History[1].From)
	require.Equal(t, "Inactive", updated.History[1].To)

	resp = call(t, app, http.MethodGet, "/api/v1/teams/999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/v1/lov/members/active", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	active := decode[[]api.Option](t, resp)
	names := make([]string, 0, len(active))
	for _, o := range active {
		names = append(names, o.Name)
	}
	require.ElementsMatch(t, []string{"Alice Johnson", "Ethan Hunt"}, names)
}

func TestUpdateTeamMemberKeepsStatus(t *testing.T) {
	app := newTestApp(t)

	resp := call(t, app, http.MethodPut, "/api/v1/teams/2", api.MemberInput{
		Name: "Bob Smith", Email: "bob@example.com", Phone: "08198765432",
		Role: "Developer/Engineer", Unit: "Backend Developer",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bob := decode[struct {
		Member api.TeamMember `json:"member"`
	}](t, resp).Member
	require.Equal(t, "Inactive", bob.Status)
	require.Empty(t, bob.History)
}

func TestExportReportEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/v1/reports", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	types := decode[[]api.Option](t, resp)
	require.Len(t, types, 4)
	require.Equal(t, api.Option{Id: "master-data", Name: "Master Data"}, types[0])

	for _, tc := range []struct {
		typ, start, end, file string
		rows                  int
	}{
		{"master-data", "2025-01-01", "2025-01-01", "master-data_2025-01-01_2025-01-01.csv", 3},
		{"Documents", "2025-09-10", "2025-09-10", "documents_2025-09-10_2025-09-10.csv", 4},
		{"transactions", "2025-09-01", "2025-09-01", "transactions_2025-09-01_2025-09-01.csv", 2},
		{"users", "2024-02-01", "2024-02-29", "users_2024-02-01_2024-02-29.csv", 2},
	} {
		resp = call(t, app, http.MethodGet, "/api/v1/reports/export?type="+url.QueryEscape(tc.typ)+"&start="+tc.start+"&end="+tc.end, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, tc.typ)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), tc.file)

		records, err := csv.NewReader(resp.Body).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, tc.rows+1, tc.typ)
	}

	resp = call(t, app, http.MethodGet, "/api/v1/reports/export?type=invoices&start=2025-09-01&end=2025-09-01", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decode[api.ErrorResponse](t, resp).Error.Fields, "type")

	resp = call(t, app, http.MethodGet, "/api/v1/reports/export?start=2025-09-01&end=2025-09-01", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
