package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"workio/internal/entities"
	api "workio/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func errorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})
	return app
}

func decodeError(t *testing.T, resp *http.Response) api.ErrorResponse {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestWriteErrorValidationFields(t *testing.T) {
	v := entities.NewValidationError()
	v.Add("name", "Project name is required")

	resp, err := errorApp(fmt.Errorf("create: %w", v)).Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	require.Equal(t, api.INVALIDARGUMENT, body.Error.Code)
	require.Equal(t, invalidForm, body.Error.Message)
	require.Equal(t, map[string]string{"name": "Project name is required"}, body.Error.Fields)
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   api.ErrorResponseErrorCode
	}{
		{name: "invalid_argument", err: entities.ErrInvalidArgument, status: http.StatusBadRequest, code: api.INVALIDARGUMENT},
		{name: "project_not_found", err: entities.ErrProjectNotFound, status: http.StatusNotFound, code: api.NOTFOUND},
		{name: "notification_not_found", err: entities.ErrNotificationNotFound, status: http.StatusNotFound, code: api.NOTFOUND},
		{name: "conflict", err: fmt.Errorf("%w: email taken", entities.ErrConflict), status: http.StatusConflict, code: api.CONFLICT},
		{name: "transition", err: entities.ErrInvalidTransition, status: http.StatusConflict, code: api.INVALIDTRANSITION},
		{name: "unavailable", err: fmt.Errorf("postgres: %w", entities.ErrUnavailable), status: http.StatusServiceUnavailable, code: api.UNAVAILABLE},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError, code: api.INTERNAL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resp, err := errorApp(tt.err).Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)
			body := decodeError(t, resp)
			require.Equal(t, tt.code, body.Error.Code)
			require.Empty(t, body.Error.Fields)
		})
	}
}

func TestErrorHandlerUnknownRoute(t *testing.T) {
	resp, err := errorApp(nil).Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, api.NOTFOUND, decodeError(t, resp).Error.Code)
}
