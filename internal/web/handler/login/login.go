// Package login provides the JSON login endpoint.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/auth"
	"github.com/gbunao/portfolio-cms/internal/config"
	"github.com/gbunao/portfolio-cms/internal/web/handler"
	"github.com/gbunao/portfolio-cms/internal/web/session"
)

const (
	// Path is the path of the login endpoint.
	Path = "/api/login"
)

// loginRequest is the login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	sessions *session.Store
	auth     *auth.Service
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Store) error {
	if app == nil || cfg == nil || db == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.sessions = sessions
	s.auth = auth.NewService(db)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Post handles the login request. Unknown usernames, wrong passwords and
// disabled accounts all get the same uniform 401 to avoid a username oracle.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(loginRequest)

	if err := c.BodyParser(req); err != nil || req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Incomplete data.",
		})
	}

	user, err := s.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		log.Info().Str("username", req.Username).Err(err).Msg("login rejected")

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials.",
		})
	}

	token, err := s.sessions.Create(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error.",
		})
	}

	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		MaxAge:   int(s.sessions.Expiry().Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.JSON(fiber.Map{
		"message":  "Login successful.",
		"username": user.Username,
	})
}
