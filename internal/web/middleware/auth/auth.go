// Package auth provides the session gate for the content management API.
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gbunao/portfolio-cms/internal/web/session"
)

// LocalsKey is the fiber.Locals key holding the caller's session data.
const LocalsKey = "SessionData"

// RequireSession rejects requests that do not carry a valid session
// cookie with a 401 JSON response. On success the session data is placed
// in fiber.Locals under LocalsKey.
func RequireSession(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)

		data, err := sessions.Read(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		c.Locals(LocalsKey, data)

		return c.Next()
	}
}

// FromLocals returns the session data stored by RequireSession, or nil.
func FromLocals(c *fiber.Ctx) *session.Data {
	data, _ := c.Locals(LocalsKey).(*session.Data)
	return data
}
