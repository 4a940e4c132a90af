package web

import (
	"github.com/gofiber/fiber/v2"
)

// The settings API is consumed cross-origin by the browser client, so every
// response carries the same permissive header set regardless of outcome.
const (
	allowOrigin  = "*"
	allowMethods = "GET, POST, OPTIONS"
	allowHeaders = "Content-Type"
)

// FixedHeaders is a Fiber middleware that attaches the fixed cross-origin
// header set to every response and answers pre-flight OPTIONS requests with
// an empty 204 before any routing happens.
func FixedHeaders(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, allowOrigin)
	c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)

	if c.Method() == fiber.MethodOptions {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusNoContent).Send(nil)
	}

	return c.Next()
}
