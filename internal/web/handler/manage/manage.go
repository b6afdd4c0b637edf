// Package manage provides the session-gated content management endpoint.
// A single POST route dispatches on an action tag to one-row create,
// update and delete operations against the content tables.
package manage

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/config"
	contentctl "github.com/gbunao/portfolio-cms/internal/db/controller/content"
	"github.com/gbunao/portfolio-cms/internal/web/handler"
	middleware "github.com/gbunao/portfolio-cms/internal/web/middleware/auth"
	"github.com/gbunao/portfolio-cms/internal/web/session"
)

const (
	// Path is the path of the content management endpoint.
	Path = "/api/manage"
)

// Service is the manage handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	sessions *session.Store
}

// Handler is the manage handler.
var Handler = Service{}

// Init initializes the manage handler. All routes are behind the session gate.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Store) error {
	if app == nil || cfg == nil || db == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.sessions = sessions

	app.Post(Path, middleware.RequireSession(sessions), s.Post)

	return nil
}

// Post dispatches a management action. Every action touches exactly one
// row; deletes are idempotent at the protocol level.
func (s *Service) Post(c *fiber.Ctx) error {
	var tag actionTag
	if err := c.BodyParser(&tag); err != nil || tag.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Action required",
		})
	}

	sess := middleware.FromLocals(c)

	message, err := s.dispatch(c, tag.Action)
	if err != nil {
		if errors.Is(err, errBadRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid data.",
			})
		}

		if errors.Is(err, errUnknownAction) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid action",
			})
		}

		log.Error().Err(err).Str("action", tag.Action).
			Str("username", sess.Username).Msg("manage action failed")

		body := fiber.Map{"message": "Database error."}
		if s.cfg.DevMode {
			body["error"] = err.Error()
		}

		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}

	log.Info().Str("action", tag.Action).Str("username", sess.Username).Msg("content changed")

	return c.JSON(fiber.Map{"message": message})
}

func (s *Service) dispatch(c *fiber.Ctx, action string) (string, error) {
	switch action {
	case "update_profile":
		return s.updateProfile(c)
	case "add_skill":
		return s.addSkill(c)
	case "delete_skill":
		return s.deleteSkill(c)
	case "add_project":
		return s.addProject(c)
	case "delete_project":
		return s.deleteProject(c)
	case "add_hobby":
		return s.addHobby(c)
	case "delete_hobby":
		return s.deleteHobby(c)
	default:
		return "", errUnknownAction
	}
}

func (s *Service) updateProfile(c *fiber.Ctx) (string, error) {
	req, err := parse[updateProfileRequest](c)
	if err != nil {
		return "", err
	}

	err = contentctl.UpdateProfile(s.db, contentctl.ProfileFields{
		Name:     req.Name,
		Title:    req.Title,
		Bio:      req.Bio,
		Email:    req.Email,
		GitHub:   req.GitHub,
		LinkedIn: req.LinkedIn,
	})
	if err != nil {
		return "", err
	}

	return "Profile updated", nil
}

func (s *Service) addSkill(c *fiber.Ctx) (string, error) {
	req, err := parse[addSkillRequest](c)
	if err != nil {
		return "", err
	}

	if _, err := contentctl.CreateSkill(s.db, req.Name, req.Category, req.Proficiency); err != nil {
		return "", err
	}

	return "Skill added", nil
}

func (s *Service) deleteSkill(c *fiber.Ctx) (string, error) {
	req, err := parse[deleteRequest](c)
	if err != nil {
		return "", err
	}

	if err := contentctl.DeleteSkill(s.db, req.ID); err != nil {
		return "", err
	}

	return "Skill deleted", nil
}

func (s *Service) addProject(c *fiber.Ctx) (string, error) {
	req, err := parse[addProjectRequest](c)
	if err != nil {
		return "", err
	}

	_, err = contentctl.CreateProject(s.db, contentctl.ProjectFields{
		Title:       req.Title,
		Description: req.Desc,
		TechStack:   req.Tech,
		ImageURL:    req.Img,
		ProjectURL:  req.Link,
	})
	if err != nil {
		return "", err
	}

	return "Project added", nil
}

func (s *Service) deleteProject(c *fiber.Ctx) (string, error) {
	req, err := parse[deleteRequest](c)
	if err != nil {
		return "", err
	}

	if err := contentctl.DeleteProject(s.db, req.ID); err != nil {
		return "", err
	}

	return "Project deleted", nil
}

func (s *Service) addHobby(c *fiber.Ctx) (string, error) {
	req, err := parse[addHobbyRequest](c)
	if err != nil {
		return "", err
	}

	if _, err := contentctl.CreateHobby(s.db, req.Name, req.Desc); err != nil {
		return "", err
	}

	return "Hobby added", nil
}

func (s *Service) deleteHobby(c *fiber.Ctx) (string, error) {
	req, err := parse[deleteRequest](c)
	if err != nil {
		return "", err
	}

	if err := contentctl.DeleteHobby(s.db, req.ID); err != nil {
		return "", err
	}

	return "Hobby deleted", nil
}
