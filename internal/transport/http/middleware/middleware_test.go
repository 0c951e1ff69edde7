package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"workio/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestActor(t *testing.T) {
	app := fiber.New()
	app.Use(Actor())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(entities.ActorFrom(c.UserContext()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderActor, " Alice Johnson ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, "Alice Johnson", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	require.Equal(t, entities.SystemActor, string(body))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(Actor())
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusServiceUnavailable) })
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusBadRequest, "Invalid format for parameter id")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok?page=2", nil)
	req.Header.Set(HeaderActor, "Bob")
	_, err := app.Test(req)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	require.Equal(t, "/ok?page=2", first["path"])
	require.Equal(t, int64(http.StatusOK), first["status"])
	require.Equal(t, "Bob", first["actor"])
	require.NotEmpty(t, first["request_id"])

	require.Equal(t, zap.ErrorLevel, entries[1].Level)

	third := entries[2].ContextMap()
	require.Equal(t, zap.WarnLevel, entries[2].Level)
	require.Equal(t, int64(http.StatusBadRequest), third["status"])
	require.Equal(t, "Invalid format for parameter id", third["error"])
}
