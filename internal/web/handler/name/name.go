// Package name handles updates of the stored name suffix.
package name

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dakotalock/holy-grail-app-1750546242/internal/config"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/store"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/web/handler"
)

const (
	// Path is the route of the name update endpoint.
	Path = handler.APIPrefix + "/name"
)

// Request is the expected update body.
type Request struct {
	Name string `json:"name" validate:"required"`
}

// Response is the update response body.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Service is the name update handler service.
type Service struct {
	cfg       *config.Config
	store     *store.Store
	validator *validator.Validate
}

// Handler is the name update handler.
var Handler = Service{}

// Init initializes the name update handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st *store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACSFatalLogMsg)
	}

	s.cfg = cfg
	s.store = st
	s.validator = validator.New()

	// register routes
	app.Post(Path, s.Post)

	return nil
}

// Post validates the request body and overwrites the stored name suffix.
// Malformed input never reaches the store layer.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request

	if err := c.BodyParser(&req); err != nil {
		log.Debug().Err(err).Msg("failed to parse name update body")

		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Status:  "error",
			Message: "request body must be a JSON object with a string field 'name'",
		})
	}

	if err := s.validator.Struct(&req); err != nil {
		log.Debug().Err(err).Msg("name update body failed validation")

		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Status:  "error",
			Message: "field 'name' is required and can not be empty",
		})
	}

	if err := s.store.SetSuffix(req.Name); err != nil {
		log.Error().Err(err).Msg("failed to update name suffix")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Info().Str("name", req.Name).Msg("name suffix updated")

	return c.JSON(Response{
		Status:  "success",
		Message: fmt.Sprintf("Name suffix updated to %s.", req.Name),
	})
}
