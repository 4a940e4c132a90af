package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// initStore is a Fiber middleware running the idempotent store
// initialization before any API request is routed. An initialization
// failure aborts the request with the storage error.
func (s *Service) initStore(c *fiber.Ctx) error {
	if err := s.store.Initialize(); err != nil {
		log.Error().Err(err).Msg("settings store initialization failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Next()
}
