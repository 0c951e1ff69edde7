package handlers_fiber

import (
	"net/http"

	"workio/internal/entities"
	"workio/internal/mapper"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

type documentResponse struct {
	Document api.Document `json:"document"`
}

// ListDocuments returns a filtered page of documents.
func (h *Handler) ListDocuments(c *fiber.Ctx, params api.ListParams) error {
	page, err := h.uc.ListDocuments(c.UserContext(), mapper.ToListingQuery(params))
	if err != nil {
		h.log.Errorw("failed to list documents", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPage(page, mapper.ToOAPIDocument))
}

// CreateDocument stores a numbered draft document.
func (h *Handler) CreateDocument(c *fiber.Ctx) error {
	var body api.DocumentInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	d, err := h.uc.CreateDocument(c.UserContext(), mapper.FromOAPIDocument("", body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(documentResponse{Document: mapper.ToOAPIDocument(*d)})
}

// GetDocument returns a document with versions and comments.
func (h *Handler) GetDocument(c *fiber.Ctx, docNo string) error {
	detail, err := h.uc.Document(c.UserContext(), docNo)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIDocumentDetail(*detail))
}

// UpdateDocument rewrites title, project, reviewers and notes.
func (h *Handler) UpdateDocument(c *fiber.Ctx, docNo string) error {
	var body api.DocumentInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	d, err := h.uc.UpdateDocument(c.UserContext(), mapper.FromOAPIDocument(docNo, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(documentResponse{Document: mapper.ToOAPIDocument(*d)})
}

// SubmitDocument sends a draft or rejected document to review.
func (h *Handler) SubmitDocument(c *fiber.Ctx, docNo string) error {
	d, err := h.uc.SubmitDocument(c.UserContext(), docNo)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(documentResponse{Document: mapper.ToOAPIDocument(*d)})
}

// ReviewDocument approves or rejects a submitted document.
func (h *Handler) ReviewDocument(c *fiber.Ctx, docNo string) error {
	var body api.ReviewInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	d, err := h.uc.ReviewDocument(c.UserContext(), docNo, mapper.FromOAPIReview(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(documentResponse{Document: mapper.ToOAPIDocument(*d)})
}

// UploadDocumentVersion records a new file version.
func (h *Handler) UploadDocumentVersion(c *fiber.Ctx, docNo string) error {
	var body api.VersionInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	v, err := h.uc.UploadVersion(c.UserContext(), docNo, body.Version, body.FileName)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Version api.DocumentVersion `json:"version"`
	}{Version: mapper.ToOAPIVersion(*v)})
}

// AddDocumentComment attaches a comment to a document.
func (h *Handler) AddDocumentComment(c *fiber.Ctx, docNo string) error {
	var body api.CommentInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	cm, err := h.uc.AddComment(c.UserContext(), mapper.FromOAPIComment(docNo, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Comment api.Comment `json:"comment"`
	}{Comment: mapper.ToOAPIComment(*cm)})
}

// ListDocumentOptions returns documents with the requested status.
func (h *Handler) ListDocumentOptions(c *fiber.Ctx, params api.ListDocumentOptionsParams) error {
	opts, err := h.uc.DocumentsByStatus(c.UserContext(), entities.DocumentStatus(params.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIOptions(opts))
}
