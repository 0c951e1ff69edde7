package handlers_fiber

import (
	"bytes"
	"net/http"

	"workio/internal/entities"
	"workio/internal/mapper"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListReportTypes returns the reports offered for download.
func (h *Handler) ListReportTypes(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIReportTypes(h.uc.ReportTypes(c.UserContext())))
}

// ExportReport streams one report over a date range as CSV.
func (h *Handler) ExportReport(c *fiber.Ctx, params api.ExportReportParams) error {
	v := entities.NewValidationError()
	typ, ok := entities.ParseReportType(params.Type)
	if !ok {
		v.Add("type", "Report type must be Master Data, Documents, Transactions or Users")
	}
	start := queryDate(v, "start", params.Start)
	end := queryDate(v, "end", params.End)
	if err := v.OrNil(); err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	rows, err := h.uc.ExportReport(c.UserContext(), &buf, typ, start, end)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Infow("report exported", "type", typ, "start", params.Start, "end", params.End, "rows", rows)
	return sendCSV(c, typ.Slug(), start, end, buf.Bytes())
}
