package handlers_fiber

import (
	"net/http"

	"workio/internal/mapper"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListTeamMembers returns a filtered page of team members.
func (h *Handler) ListTeamMembers(c *fiber.Ctx, params api.ListParams) error {
	page, err := h.uc.ListMembers(c.UserContext(), mapper.ToListingQuery(params))
	if err != nil {
		h.log.Errorw("failed to list members", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPage(page, mapper.ToOAPIMember))
}

// CreateTeamMember registers a team member.
func (h *Handler) CreateTeamMember(c *fiber.Ctx) error {
	var body api.MemberInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	m, err := h.uc.CreateMember(c.UserContext(), mapper.FromOAPIMember(0, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Member api.TeamMember `json:"member"`
	}{Member: mapper.ToOAPIMember(*m)})
}

// GetTeamMember returns a member with tasks and history.
func (h *Handler) GetTeamMember(c *fiber.Ctx, id int64) error {
	m, err := h.uc.Member(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIMember(*m))
}

// UpdateTeamMember rewrites a member; unit and status changes land in its history.
func (h *Handler) UpdateTeamMember(c *fiber.Ctx, id int64) error {
	var body api.MemberInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	m, err := h.uc.UpdateMember(c.UserContext(), mapper.FromOAPIMember(id, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Member api.TeamMember `json:"member"`
	}{Member: mapper.ToOAPIMember(*m)})
}

// ListActiveMembers returns active members for assignee and reviewer inputs.
func (h *Handler) ListActiveMembers(c *fiber.Ctx) error {
	opts, err := h.uc.ActiveMembers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIOptions(opts))
}
