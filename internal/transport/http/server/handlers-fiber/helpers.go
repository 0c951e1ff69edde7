package handlers_fiber

import (
	"context"
	"errors"
	"net/http"

	"workio/internal/entities"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

const invalidForm = "Please fill in all required fields correctly."

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"
	var fields map[string]string

	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = invalidForm
		fields = verr.Fields
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrDocumentNotFound),
		errors.Is(err, entities.ErrMemberNotFound),
		errors.Is(err, entities.ErrAccountNotFound),
		errors.Is(err, entities.ErrMasterItemNotFound),
		errors.Is(err, entities.ErrNotificationNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidTransition):
		status = http.StatusConflict
		code = api.INVALIDTRANSITION
		msg = err.Error()
	case errors.Is(err, entities.ErrConflict):
		status = http.StatusConflict
		code = api.CONFLICT
		msg = err.Error()
	case errors.Is(err, entities.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		code = api.UNAVAILABLE
		msg = "service temporarily unavailable"
	}

	return c.Status(status).JSON(errorResponse(code, msg, fields))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string, fields map[string]string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg, Fields: fields}}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body", nil))
}

// ErrorHandler renders errors escaping the handlers, such as unknown routes
// or malformed path parameters, in the API error format.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ferr *fiber.Error
	if !errors.As(err, &ferr) {
		return writeError(c, err)
	}

	code := api.INTERNAL
	switch ferr.Code {
	case http.StatusBadRequest:
		code = api.INVALIDARGUMENT
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		code = api.NOTFOUND
	case http.StatusServiceUnavailable, http.StatusRequestTimeout:
		code = api.UNAVAILABLE
	}
	return c.Status(ferr.Code).JSON(errorResponse(code, ferr.Message, nil))
}
