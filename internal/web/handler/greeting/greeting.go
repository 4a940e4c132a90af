// Package greeting serves the greeting built from the stored name suffix.
package greeting

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dakotalock/holy-grail-app-1750546242/internal/config"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/store"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/web/handler"
)

const (
	// Path is the route of the greeting endpoint.
	Path = handler.APIPrefix + "/greeting"
)

// Response is the greeting response body.
type Response struct {
	Message string `json:"message"`
}

// Service is the greeting handler service.
type Service struct {
	cfg   *config.Config
	store *store.Store
}

// Handler is the greeting handler.
var Handler = Service{}

// Init initializes the greeting handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st *store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACSFatalLogMsg)
	}

	s.cfg = cfg
	s.store = st

	// register routes
	app.Get(Path, s.Get)

	return nil
}

// Get returns the greeting built from the stored suffix.
func (s *Service) Get(c *fiber.Ctx) error {
	suffix, err := s.store.GetSuffix()
	if err != nil {
		log.Error().Err(err).Msg("failed to read name suffix")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(Response{Message: fmt.Sprintf("Hello, %s!", suffix)})
}
