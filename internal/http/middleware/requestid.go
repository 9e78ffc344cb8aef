package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the correlation id between the dashboard
	// client and the backend; the client sets one on every call.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is where the id is stored in Fiber's context locals
	// for the logger and the error envelope.
	RequestIDLocalKey = "request_id"
)

// RequestID ensures every request has a correlation id: an incoming
// X-Request-ID is kept, a missing one is replaced with a fresh UUID. The id
// is stored in context locals and echoed on the response so a dashboard
// failure can be matched to its backend log line.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
