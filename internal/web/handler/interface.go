package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/config"
	"github.com/gbunao/portfolio-cms/internal/web/session"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Store) error
}
