package middleware

import (
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger logs each HTTP request as one JSON line via slog:
// request_id (from the RequestID middleware), method, path, status, and
// latency in milliseconds.
func Logger(w io.Writer) fiber.Handler {
	logger := slog.New(slog.NewJSONHandler(w, nil))

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collect fields after the handler so the final status is captured.
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		logger.Info("request",
			"request_id", rid,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency_ms", float64(time.Since(start).Microseconds())/1000.0,
		)

		return err
	}
}
