// Package sessioncheck provides the session probe endpoint the admin
// front-end calls before loading its data.
package sessioncheck

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gbunao/portfolio-cms/internal/web/handler"
	"github.com/gbunao/portfolio-cms/internal/web/session"
)

const (
	// Path is the path of the session probe endpoint.
	Path = "/api/session"
)

// Service is the session probe handler service.
type Service struct {
	handler.Service
	sessions *session.Store
}

// Handler is the session probe handler.
var Handler = Service{}

// Init initializes the session probe handler.
func (s *Service) Init(app *fiber.App, sessions *session.Store) error {
	if app == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.sessions = sessions

	app.Get(Path, s.Get)

	return nil
}

// Get reports whether the caller holds an active session. Always 200.
func (s *Service) Get(c *fiber.Ctx) error {
	data, err := s.sessions.Read(c.Cookies(session.CookieName))
	if err != nil {
		return c.JSON(fiber.Map{"logged_in": false})
	}

	return c.JSON(fiber.Map{
		"logged_in": true,
		"username":  data.Username,
	})
}
