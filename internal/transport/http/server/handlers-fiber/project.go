package handlers_fiber

import (
	"net/http"

	"workio/internal/mapper"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListProjects returns a filtered page of projects.
func (h *Handler) ListProjects(c *fiber.Ctx, params api.ListParams) error {
	page, err := h.uc.ListProjects(c.UserContext(), mapper.ToListingQuery(params))
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPage(page, mapper.ToOAPIProject))
}

// CreateProject validates the form and stores a numbered project.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var body api.ProjectInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := mapper.FromOAPIProject("", body)
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.CreateProject(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToOAPIProject(*p)})
}

// GetProject returns a project with its tasks and documents.
func (h *Handler) GetProject(c *fiber.Ctx, projectNo string) error {
	detail, err := h.uc.Project(c.UserContext(), projectNo)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIProjectDetail(*detail))
}

// UpdateProject rewrites a project identified by its number.
func (h *Handler) UpdateProject(c *fiber.Ctx, projectNo string) error {
	var body api.ProjectInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := mapper.FromOAPIProject(projectNo, body)
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.UpdateProject(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToOAPIProject(*p)})
}

// ListActiveProjects returns active projects for selection inputs.
func (h *Handler) ListActiveProjects(c *fiber.Ctx) error {
	opts, err := h.uc.ActiveProjects(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIOptions(opts))
}
