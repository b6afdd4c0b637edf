// Package content serves the public content API: the aggregated portfolio
// read and the contact form submission.
package content

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/config"
	contentctl "github.com/gbunao/portfolio-cms/internal/db/controller/content"
	"github.com/gbunao/portfolio-cms/internal/mailer"
	"github.com/gbunao/portfolio-cms/internal/sanitize"
	"github.com/gbunao/portfolio-cms/internal/web/handler"
)

const (
	// Path is the path of the public content API.
	Path = "/api/content"
)

var validate = validator.New()

// contactRequest is the contact form submission body.
type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Service is the content handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	mail *mailer.Mailer
}

// Handler is the content handler.
var Handler = Service{}

// Init initializes the content handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, mail *mailer.Mailer) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.mail = mail

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get returns the aggregated public content.
func (s *Service) Get(c *fiber.Ctx) error {
	aggregate, err := contentctl.GetAggregate(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate content")

		body := fiber.Map{"message": "Error fetching data."}
		if s.cfg.DevMode {
			body["error"] = err.Error()
		}

		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}

	return c.JSON(aggregate)
}

// Post handles a contact form submission: validate, sanitize, persist and
// notify. Mail delivery is best-effort and never fails the request.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(contactRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Incomplete data.",
		})
	}

	req.Name = sanitize.Clean(req.Name)
	req.Email = sanitize.Clean(req.Email)
	req.Message = sanitize.Clean(req.Message)

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Incomplete data.",
		})
	}

	if _, err := contentctl.CreateMessage(s.db, req.Name, req.Email, req.Message); err != nil {
		log.Error().Err(err).Msg("failed to store contact message")

		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Unable to send message.",
		})
	}

	if s.mail != nil {
		if err := s.mail.SendContactNotification(req.Name, req.Email, req.Message); err != nil &&
			!errors.Is(err, mailer.ErrDisabled) {
			log.Warn().Err(err).Msg("contact notification mail failed")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent successfully.",
	})
}
