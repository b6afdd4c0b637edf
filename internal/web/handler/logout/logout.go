// Package logout provides the logout endpoint.
package logout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gbunao/portfolio-cms/internal/config"
	"github.com/gbunao/portfolio-cms/internal/web/handler"
	"github.com/gbunao/portfolio-cms/internal/web/session"
)

const (
	// Path is the path of the logout endpoint.
	Path = "/api/logout"
)

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	sessions *session.Store
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, sessions *session.Store) error {
	if app == nil || cfg == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.sessions = sessions

	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)

	return nil
}

// Logout destroys the caller's session unconditionally and always responds 200.
func (s *Service) Logout(c *fiber.Ctx) error {
	token := c.Cookies(session.CookieName)
	if token != "" {
		if err := s.sessions.Destroy(token); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	// Clear the session cookie
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Logged out successfully.",
	})
}
