package handlers_fiber

import (
	"net/http"
	"time"

	"workio/internal/entities"
	"workio/internal/mapper"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetOverview returns dashboard counters for a day, today by default.
func (h *Handler) GetOverview(c *fiber.Ctx, params api.GetOverviewParams) error {
	var day time.Time
	if params.Date != nil {
		v := entities.NewValidationError()
		day = queryDate(v, "date", *params.Date)
		if err := v.OrNil(); err != nil {
			return writeError(c, err)
		}
	}

	ov, err := h.uc.Overview(c.UserContext(), day)
	if err != nil {
		h.log.Errorw("failed to build overview", "error", err)
		return writeError(c, err)
	}
	if day.IsZero() {
		day = time.Now()
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIOverview(day, ov))
}
