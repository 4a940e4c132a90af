package web

import (
	"github.com/gofiber/fiber/v2"

	fiberlogger "github.com/dakotalock/holy-grail-app-1750546242/internal/logger/adapter/fiber"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/uniuri"
)

// RequestID is a Fiber middleware tagging every request with a random id.
// An id supplied by the caller via X-Request-Id is kept.
func RequestID(c *fiber.Ctx) error {
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uniuri.New()
	}

	c.Locals(fiberlogger.RequestIDLocal, id)
	c.Set(fiber.HeaderXRequestID, id)

	return c.Next()
}
