package manage

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	// errUnknownAction marks an unrecognized action tag.
	errUnknownAction = errors.New("unknown action")
	// errBadRequest marks a body that failed parsing or validation.
	errBadRequest = errors.New("invalid request body")
)

var validate = validator.New()

// actionTag is the first-pass body shape used to select the action.
type actionTag struct {
	Action string `json:"action"`
}

// Request shapes per action. Field names follow the admin wire format.

type updateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

type addSkillRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Proficiency int    `json:"proficiency" validate:"min=0,max=100"`
}

type addProjectRequest struct {
	Title string `json:"title" validate:"required"`
	Desc  string `json:"desc"`
	Tech  string `json:"tech"`
	Img   string `json:"img"`
	Link  string `json:"link"`
}

type addHobbyRequest struct {
	Name string `json:"name" validate:"required"`
	Desc string `json:"desc"`
}

type deleteRequest struct {
	ID uint64 `json:"id" validate:"required"`
}

// parse decodes the request body into T and validates it. A parse or
// validation failure is reported as errBadRequest.
func parse[T any](c *fiber.Ctx) (*T, error) {
	req := new(T)

	if err := c.BodyParser(req); err != nil {
		return nil, errBadRequest
	}

	if err := validate.Struct(req); err != nil {
		return nil, errBadRequest
	}

	return req, nil
}
