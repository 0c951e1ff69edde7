package oapi

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /projects)
	ListProjects(c *fiber.Ctx, params ListParams) error
	// (POST /projects)
	CreateProject(c *fiber.Ctx) error
	// (GET /projects/{projectNo})
	GetProject(c *fiber.Ctx, projectNo string) error
	// (PUT /projects/{projectNo})
	UpdateProject(c *fiber.Ctx, projectNo string) error
	// (GET /lov/projects/active)
	ListActiveProjects(c *fiber.Ctx) error

	// (GET /tasks)
	ListTasks(c *fiber.Ctx, params ListParams) error
	// (POST /tasks)
	CreateTask(c *fiber.Ctx) error
	// (GET /tasks/{id})
	GetTask(c *fiber.Ctx, id int64) error
	// (PUT /tasks/{id})
	UpdateTask(c *fiber.Ctx, id int64) error
	// (POST /tasks/{id}/archive)
	ArchiveTask(c *fiber.Ctx, id int64) error
	// (GET /lov/tasks/in-progress)
	ListInProgressTasks(c *fiber.Ctx) error

	// (GET /documents)
	ListDocuments(c *fiber.Ctx, params ListParams) error
	// (POST /documents)
	CreateDocument(c *fiber.Ctx) error
	// (GET /documents/{docNo})
	GetDocument(c *fiber.Ctx, docNo string) error
	// (PUT /documents/{docNo})
	UpdateDocument(c *fiber.Ctx, docNo string) error
	// (POST /documents/{docNo}/submit)
	SubmitDocument(c *fiber.Ctx, docNo string) error
	// (POST /documents/{docNo}/review)
	ReviewDocument(c *fiber.Ctx, docNo string) error
	// (POST /documents/{docNo}/versions)
	UploadDocumentVersion(c *fiber.Ctx, docNo string) error
	// (POST /documents/{docNo}/comments)
	AddDocumentComment(c *fiber.Ctx, docNo string) error
	// (GET /lov/documents)
	ListDocumentOptions(c *fiber.Ctx, params ListDocumentOptionsParams) error

	// (GET /teams)
	ListTeamMembers(c *fiber.Ctx, params ListParams) error
	// (POST /teams)
	CreateTeamMember(c *fiber.Ctx) error
	// (GET /teams/{id})
	GetTeamMember(c *fiber.Ctx, id int64) error
	// (PUT /teams/{id})
	UpdateTeamMember(c *fiber.Ctx, id int64) error
	// (GET /lov/members/active)
	ListActiveMembers(c *fiber.Ctx) error

	// (GET /master/accounts)
	ListAccounts(c *fiber.Ctx, params ListParams) error
	// (POST /master/accounts)
	CreateAccount(c *fiber.Ctx) error
	// (PUT /master/accounts/{id})
	UpdateAccount(c *fiber.Ctx, id int64) error

	// (GET /master/{kind})
	ListMasterItems(c *fiber.Ctx, kind string, params ListParams) error
	// (POST /master/{kind})
	CreateMasterItem(c *fiber.Ctx, kind string) error
	// (PUT /master/{kind}/{id})
	UpdateMasterItem(c *fiber.Ctx, kind string, id int64) error
	// (GET /lov/master/{kind})
	ListMasterOptions(c *fiber.Ctx, kind string) error

	// (GET /audit-trail)
	ListAuditTrail(c *fiber.Ctx, params ListParams) error
	// (GET /audit-trail/export)
	ExportAuditTrail(c *fiber.Ctx, params ExportAuditTrailParams) error

	// (GET /reports)
	ListReportTypes(c *fiber.Ctx) error
	// (GET /reports/export)
	ExportReport(c *fiber.Ctx, params ExportReportParams) error

	// (GET /notifications)
	ListNotifications(c *fiber.Ctx) error
	// (DELETE /notifications/{id})
	DismissNotification(c *fiber.Ctx, id string) error

	// (GET /overview)
	GetOverview(c *fiber.Ctx, params GetOverviewParams) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []fiber.Handler
}

// RegisterHandlers mounts every route under /api/v1.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{BaseURL: "/api/v1"})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	w := &ServerInterfaceWrapper{Handler: si}

	for _, m := range options.Middlewares {
		router.Use(m)
	}
	r := router.Group(options.BaseURL)

	r.Get("/projects", w.ListProjects)
	r.Post("/projects", w.CreateProject)
	r.Get("/projects/:projectNo", w.GetProject)
	r.Put("/projects/:projectNo", w.UpdateProject)
	r.Get("/lov/projects/active", w.ListActiveProjects)

	r.Get("/tasks", w.ListTasks)
	r.Post("/tasks", w.CreateTask)
	r.Get("/tasks/:id", w.GetTask)
	r.Put("/tasks/:id", w.UpdateTask)
	r.Post("/tasks/:id/archive", w.ArchiveTask)
	r.Get("/lov/tasks/in-progress", w.ListInProgressTasks)

	r.Get("/documents", w.ListDocuments)
	r.Post("/documents", w.CreateDocument)
	r.Get("/documents/:docNo", w.GetDocument)
	r.Put("/documents/:docNo", w.UpdateDocument)
	r.Post("/documents/:docNo/submit", w.SubmitDocument)
	r.Post("/documents/:docNo/review", w.ReviewDocument)
	r.Post("/documents/:docNo/versions", w.UploadDocumentVersion)
	r.Post("/documents/:docNo/comments", w.AddDocumentComment)
	r.Get("/lov/documents", w.ListDocumentOptions)

	r.Get("/teams", w.ListTeamMembers)
	r.Post("/teams", w.CreateTeamMember)
	r.Get("/teams/:id", w.GetTeamMember)
	r.Put("/teams/:id", w.UpdateTeamMember)
	r.Get("/lov/members/active", w.ListActiveMembers)

	// accounts share the /master prefix and must be matched before :kind
	r.Get("/master/accounts", w.ListAccounts)
	r.Post("/master/accounts", w.CreateAccount)
	r.Put("/master/accounts/:id", w.UpdateAccount)

	r.Get("/master/:kind", w.ListMasterItems)
	r.Post("/master/:kind", w.CreateMasterItem)
	r.Put("/master/:kind/:id", w.UpdateMasterItem)
	r.Get("/lov/master/:kind", w.ListMasterOptions)

	r.Get("/audit-trail", w.ListAuditTrail)
	r.Get("/audit-trail/export", w.ExportAuditTrail)

	r.Get("/reports", w.ListReportTypes)
	r.Get("/reports/export", w.ExportReport)

	r.Get("/notifications", w.ListNotifications)
	r.Delete("/notifications/:id", w.DismissNotification)

	r.Get("/overview", w.GetOverview)
}

func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s", name))
	}
	return id, nil
}

func bindList(c *fiber.Ctx) (ListParams, error) {
	var params ListParams
	if v := c.Query("status"); v != "" {
		params.Status = &v
	}
	if v := c.Query("search"); v != "" {
		params.Search = &v
	}
	for _, q := range []struct {
		name string
		dst  **int
	}{{"page", &params.Page}, {"page_size", &params.PageSize}} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return params, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s", q.name))
		}
		*q.dst = &n
	}
	return params, nil
}

// ListProjects operation middleware
func (w *ServerInterfaceWrapper) ListProjects(c *fiber.Ctx) error {
	params, err := bindList(c)
	if err != nil {
		return err
	}
	return w.Handler.ListProjects(c, params)
}

// CreateProject operation middleware
func (w *ServerInterfaceWrapper) CreateProject(c *fiber.Ctx) error {
	return w.Handler.CreateProject(c)
}

// GetProject operation middleware
func (w *ServerInterfaceWrapper) GetProject(c *fiber.Ctx) error {
	return w.Handler.GetProject(c, c.Params("projectNo"))
}

// UpdateProject operation middleware
func (w *ServerInterfaceWrapper) UpdateProject(c *fiber.Ctx) error {
	return w.Handler.UpdateProject(c, c.Params("projectNo"))
}

// ListActiveProjects operation middleware
func (w *ServerInterfaceWrapper) ListActiveProjects(c *fiber.Ctx) error {
	return w.Handler.ListActiveProjects(c)
}

// ListTasks operation middleware
func (w *ServerInterfaceWrapper) ListTasks(c *fiber.Ctx) error {
	params, err := bindList(c)
	if err != nil {
		return err
	}
	return w.Handler.ListTasks(c, params)
}

// CreateTask operation middleware
func (w *ServerInterfaceWrapper) CreateTask(c *fiber.Ctx) error {
	return w.Handler.CreateTask(c)
}

// GetTask operation middleware
func (w *ServerInterfaceWrapper) GetTask(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetTask(c, id)
}

// UpdateTask operation middleware
func (w *ServerInterfaceWrapper) UpdateTask(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return w.Handler.UpdateTask(c, id)
}

// ArchiveTask operation middleware
func (w *ServerInterfaceWrapper) ArchiveTask(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return w.Handler.ArchiveTask(c, id)
}

// ListInProgressTasks operation middleware
func (w *ServerInterfaceWrapper) ListInProgressTasks(c *fiber.Ctx) error {
	return w.Handler.ListInProgressTasks(c)
}

// ListDocuments operation middleware
func (w *ServerInterfaceWrapper) ListDocuments(c *fiber.Ctx) error {
	params, err := bindList(c)
	if err != nil {
		return err
	}
	return w.Handler.ListDocuments(c, params)
}

// CreateDocument operation middleware
func (w *ServerInterfaceWrapper) CreateDocument(c *fiber.Ctx) error {
	return w.Handler.CreateDocument(c)
}

// GetDocument operation middleware
func (w *ServerInterfaceWrapper) GetDocument(c *fiber.Ctx) error {
	return w.Handler.GetDocument(c, c.Params("docNo"))
}

// UpdateDocument operation middleware
func (w *ServerInterfaceWrapper) UpdateDocument(c *fiber.Ctx) error {
	return w.Handler.UpdateDocument(c, c.Params("docNo"))
}

// SubmitDocument operation middleware
func (w *ServerInterfaceWrapper) SubmitDocument(c *fiber.Ctx) error {
	return w.Handler.SubmitDocument(c, c.Params("docNo"))
}

// ReviewDocument operation middleware
func (w *ServerInterfaceWrapper) ReviewDocument(c *fiber.Ctx) error {
	return w.Handler.ReviewDocument(c, c.Params("docNo"))
}

// UploadDocumentVersion operation middleware
func (w *ServerInterfaceWrapper) UploadDocumentVersion(c *fiber.Ctx) error {
	return w.Handler.UploadDocumentVersion(c, c.Params("docNo"))
}

// AddDocumentComment operation middleware
func (w *ServerInterfaceWrapper) AddDocumentComment(c *fiber.Ctx) error {
	return w.Handler.AddDocumentComment(c, c.Params("docNo"))
}

// ListDocumentOptions operation middleware
func (w *ServerInterfaceWrapper) ListDocumentOptions(c *fiber.Ctx) error {
	params := ListDocumentOptionsParams{Status: c.Query("status")}
	if params.Status == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query argument status is required, but not found")
	}
	return w.Handler.ListDocumentOptions(c, params)
}

// ListTeamMembers operation middleware
func (w *ServerInterfaceWrapper) ListTeamMembers(c *fiber.Ctx) error {
	params, err := bindList(c)
	if err != nil {
		return err
	}
	return w.Handler.ListTeamMembers(c, params)
}

// CreateTeamMember operation middleware
func (w *ServerInterfaceWrapper) CreateTeamMember(c *fiber.Ctx) error {
	return w.Handler.CreateTeamMember(c)
}

// GetTeamMember operation middleware
func (w *ServerInterfaceWrapper) GetTeamMember(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetTeamMember(c, id)
}

// UpdateTeamMember operation middleware
func (w *ServerInterfaceWrapper) UpdateTeamMember(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return w.Handler.UpdateTeamMember(c, id)
}

// ListActiveMembers operation middleware
func (w *ServerInterfaceWrapper) ListActiveMembers(c *fiber.Ctx) error {
	return w.Handler.ListActiveMembers(c)
}

// ListAccounts operation middleware
func (w *ServerInterfaceWrapper) ListAccounts(c *fiber.Ctx) error {
	params, err := bindList(c)
	if err != nil {
		return err
	}
	return w.Handler.ListAccounts(c, params)
}

// CreateAccount operation middleware
func (w *ServerInterfaceWrapper) CreateAccount(c *fiber.Ctx) error {
	return w.Handler.CreateAccount(c)
}

// UpdateAccount operation middleware
func (w *ServerInterfaceWrapper) UpdateAccount(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return w.Handler.UpdateAccount(c, id)
}

// ListMasterItems operation middleware
func (w *ServerInterfaceWrapper) ListMasterItems(c *fiber.Ctx) error {
	params, err := bindList(c)
	if err != nil {
		return err
	}
	return w.Handler.ListMasterItems(c, c.Params("kind"), params)
}

// CreateMasterItem operation middleware
func (w *ServerInterfaceWrapper) CreateMasterItem(c *fiber.Ctx) error {
	return w.Handler.CreateMasterItem(c, c.Params("kind"))
}

// UpdateMasterItem operation middleware
func (w *ServerInterfaceWrapper) UpdateMasterItem(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return w.Handler.UpdateMasterItem(c, c.Params("kind"), id)
}

// ListMasterOptions operation middleware
func (w *ServerInterfaceWrapper) ListMasterOptions(c *fiber.Ctx) error {
	return w.Handler.ListMasterOptions(c, c.Params("kind"))
}

// ListAuditTrail operation middleware
func (w *ServerInterfaceWrapper) ListAuditTrail(c *fiber.Ctx) error {
	params, err := bindList(c)
	if err != nil {
		return err
	}
	return w.Handler.ListAuditTrail(c, params)
}

// ExportAuditTrail operation middleware
func (w *ServerInterfaceWrapper) ExportAuditTrail(c *fiber.Ctx) error {
	return w.Handler.ExportAuditTrail(c, ExportAuditTrailParams{
		Start: c.Query("start"),
		End:   c.Query("end"),
	})
}

// ListReportTypes operation middleware
func (w *ServerInterfaceWrapper) ListReportTypes(c *fiber.Ctx) error {
	return w.Handler.ListReportTypes(c)
}

// ExportReport operation middleware
func (w *ServerInterfaceWrapper) ExportReport(c *fiber.Ctx) error {
	typ := c.Query("type")
	if typ == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query argument type is required, but not found")
	}
	return w.Handler.ExportReport(c, ExportReportParams{
		Type:  typ,
		Start: c.Query("start"),
		End:   c.Query("end"),
	})
}

// ListNotifications operation middleware
func (w *ServerInterfaceWrapper) ListNotifications(c *fiber.Ctx) error {
	return w.Handler.ListNotifications(c)
}

// DismissNotification operation middleware
func (w *ServerInterfaceWrapper) DismissNotification(c *fiber.Ctx) error {
	return w.Handler.DismissNotification(c, c.Params("id"))
}

// GetOverview operation middleware
func (w *ServerInterfaceWrapper) GetOverview(c *fiber.Ctx) error {
	var params GetOverviewParams
	if v := c.Query("date"); v != "" {
		params.Date = &v
	}
	return w.Handler.GetOverview(c, params)
}
