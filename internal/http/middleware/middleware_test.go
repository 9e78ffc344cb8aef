package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGenerated(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(RequestIDLocalKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, resp.Header.Get(RequestIDHeader))
}

func TestRequestIDPropagated(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "incoming-id")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "incoming-id", resp.Header.Get(RequestIDHeader))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(&buf))
	app.Get("/documents", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	req.Header.Set(RequestIDHeader, "log-test-id")

	_, err := app.Test(req)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "log-test-id", entry["request_id"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "/documents", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.Contains(t, entry, "latency_ms")
}
