package handlers_fiber

import (
	"net/http"

	"workio/internal/mapper"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListTasks returns a filtered page of tasks that are not archived.
func (h *Handler) ListTasks(c *fiber.Ctx, params api.ListParams) error {
	page, err := h.uc.ListTasks(c.UserContext(), mapper.ToListingQuery(params))
	if err != nil {
		h.log.Errorw("failed to list tasks", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPage(page, mapper.ToOAPITask))
}

// CreateTask validates the form and stores a task.
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	var body api.TaskInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := mapper.FromOAPITask(0, body)
	if err != nil {
		return writeError(c, err)
	}

	t, err := h.uc.CreateTask(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToOAPITask(*t)})
}

// GetTask returns a task, archived or not.
func (h *Handler) GetTask(c *fiber.Ctx, id int64) error {
	t, err := h.uc.Task(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITask(*t))
}

// UpdateTask rewrites a task.
func (h *Handler) UpdateTask(c *fiber.Ctx, id int64) error {
	var body api.TaskInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := mapper.FromOAPITask(id, body)
	if err != nil {
		return writeError(c, err)
	}

	t, err := h.uc.UpdateTask(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToOAPITask(*t)})
}

// ArchiveTask hides a task from the list.
func (h *Handler) ArchiveTask(c *fiber.Ctx, id int64) error {
	t, err := h.uc.ArchiveTask(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToOAPITask(*t)})
}

// ListInProgressTasks returns open tasks for selection inputs.
func (h *Handler) ListInProgressTasks(c *fiber.Ctx) error {
	opts, err := h.uc.InProgressTasks(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIOptions(opts))
}
