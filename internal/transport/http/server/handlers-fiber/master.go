package handlers_fiber

import (
	"net/http"

	"workio/internal/mapper"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

type masterResponse struct {
	Item api.MasterItem `json:"item"`
}

// ListMasterItems returns a page of roles, units or project categories.
func (h *Handler) ListMasterItems(c *fiber.Ctx, kind string, params api.ListParams) error {
	page, err := h.uc.ListMaster(c.UserContext(), mapper.MasterKind(kind), mapper.ToListingQuery(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPage(page, mapper.ToOAPIMaster))
}

// CreateMasterItem adds a role, unit or project category.
func (h *Handler) CreateMasterItem(c *fiber.Ctx, kind string) error {
	var body api.MasterInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	it, err := h.uc.CreateMaster(c.UserContext(), mapper.FromOAPIMaster(mapper.MasterKind(kind), 0, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(masterResponse{Item: mapper.ToOAPIMaster(*it)})
}

// UpdateMasterItem renames or toggles a master data item.
func (h *Handler) UpdateMasterItem(c *fiber.Ctx, kind string, id int64) error {
	var body api.MasterInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	it, err := h.uc.UpdateMaster(c.UserContext(), mapper.FromOAPIMaster(mapper.MasterKind(kind), id, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(masterResponse{Item: mapper.ToOAPIMaster(*it)})
}

// ListMasterOptions returns active items of a kind for selection inputs.
func (h *Handler) ListMasterOptions(c *fiber.Ctx, kind string) error {
	opts, err := h.uc.MasterOptions(c.UserContext(), mapper.MasterKind(kind))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIOptions(opts))
}
