package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	// RequestIDContextKey is the key used to store the request id in
	// the Fiber context.
	RequestIDContextKey = "requestid"
)

// RequestID creates a middleware that assigns every request a
// correlation id, honoring one supplied by the client.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDContextKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
