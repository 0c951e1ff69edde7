package handlers_fiber

import (
	"net/http"

	"workio/internal/mapper"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications returns the toasts that have not expired.
func (h *Handler) ListNotifications(c *fiber.Ctx) error {
	list := h.uc.Notifications(c.UserContext())
	res := make([]api.Notification, 0, len(list))
	for _, n := range list {
		res = append(res, mapper.ToOAPINotification(n))
	}
	return c.Status(http.StatusOK).JSON(res)
}

// DismissNotification closes a toast.
func (h *Handler) DismissNotification(c *fiber.Ctx, id string) error {
	if err := h.uc.DismissNotification(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
