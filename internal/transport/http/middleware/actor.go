package middleware

import (
	"strings"

	"workio/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// HeaderActor names the user acting on the dashboard. Requests without it
// are attributed to the system user.
const HeaderActor = "X-Workio-User"

// Actor stores the acting user in the request context.
func Actor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if name := strings.TrimSpace(c.Get(HeaderActor)); name != "" {
			c.SetUserContext(entities.WithActor(c.UserContext(), name))
		}
		return c.Next()
	}
}
