package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origURL := os.Getenv("WAKILI_API_URL")
	defer os.Setenv("WAKILI_API_URL", origURL)

	os.Setenv("WAKILI_API_URL", "http://api.test:9999")
	os.Setenv("WAKILI_API_TIMEOUT_SEC", "5")
	os.Setenv("WAKILI_DARK_MODE", "true")
	os.Setenv("MAX_UPLOAD_SIZE_MB", "2")
	defer func() {
		os.Unsetenv("WAKILI_API_TIMEOUT_SEC")
		os.Unsetenv("WAKILI_DARK_MODE")
		os.Unsetenv("MAX_UPLOAD_SIZE_MB")
	}()

	cfg := Load()

	assert.Equal(t, "http://api.test:9999", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout())
	assert.True(t, cfg.UI.DarkMode)
	assert.Equal(t, int64(2<<20), cfg.DevServer.MaxUploadSize)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 7, getEnvInt(key, 7))
}
