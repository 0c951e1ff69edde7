package handlers_fiber

import (
	"net/http"

	"workio/internal/mapper"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListAccounts returns a page of user accounts, newest first.
func (h *Handler) ListAccounts(c *fiber.Ctx, params api.ListParams) error {
	page, err := h.uc.ListAccounts(c.UserContext(), mapper.ToListingQuery(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPage(page, mapper.ToOAPIAccount))
}

// CreateAccount adds a user account.
func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	var body api.AccountInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	a, err := h.uc.CreateAccount(c.UserContext(), mapper.FromOAPIAccount(0, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Account api.Account `json:"account"`
	}{Account: mapper.ToOAPIAccount(*a)})
}

// UpdateAccount rewrites a user account.
func (h *Handler) UpdateAccount(c *fiber.Ctx, id int64) error {
	var body api.AccountInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	a, err := h.uc.UpdateAccount(c.UserContext(), mapper.FromOAPIAccount(id, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Account api.Account `json:"account"`
	}{Account: mapper.ToOAPIAccount(*a)})
}
