package handlers_fiber

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"workio/internal/entities"
	"workio/internal/mapper"
	api "workio/internal/oapi"
	"workio/pkg/format"

	"github.com/gofiber/fiber/v2"
)

// ListAuditTrail returns a page of the audit trail, newest first.
func (h *Handler) ListAuditTrail(c *fiber.Ctx, params api.ListParams) error {
	page, err := h.uc.ListAudit(c.UserContext(), mapper.ToListingQuery(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPage(page, mapper.ToOAPIAudit))
}

// ExportAuditTrail streams the entries between two dates as CSV.
func (h *Handler) ExportAuditTrail(c *fiber.Ctx, params api.ExportAuditTrailParams) error {
	v := entities.NewValidationError()
	start := queryDate(v, "start", params.Start)
	end := queryDate(v, "end", params.End)
	if err := v.OrNil(); err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	rows, err := h.uc.ExportAudit(c.UserContext(), &buf, start, end)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Infow("audit trail exported", "start", params.Start, "end", params.End, "rows", rows)
	return sendCSV(c, "audit-trail", start, end, buf.Bytes())
}

// sendCSV writes body as a CSV attachment named {name}_{start}_{end}.csv.
func sendCSV(c *fiber.Ctx, name string, start, end time.Time, body []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_%s_%s.csv"`,
		name, start.Format(format.ISODate), end.Format(format.ISODate)))
	return c.Status(http.StatusOK).Send(body)
}

// queryDate parses an optional date; empty values are left for the usecase to reject.
func queryDate(v *entities.ValidationError, field, raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}
	}
	t, ok := format.ParseDate(raw)
	if !ok {
		v.Add(field, "Date must be formatted as YYYY-MM-DD")
	}
	return t
}
