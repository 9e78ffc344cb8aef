package config

import (
	"os"
	"strconv"
	"time"
)

// APIConfig holds settings for the document backend REST client.
type APIConfig struct {
	BaseURL       string
	TimeoutSec    int
	TraceRequests bool
}

// DevServerConfig holds settings for the bundled in-memory reference backend.
type DevServerConfig struct {
	Port          string
	MaxUploadSize int64
}

// UIConfig holds process-wide presentation preferences. Dark mode is plain
// configuration, deliberately detached from the document data flow.
type UIConfig struct {
	DarkMode bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	API       APIConfig
	DevServer DevServerConfig
	UI        UIConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		API: APIConfig{
			BaseURL:       getEnv("WAKILI_API_URL", "http://localhost:8080"),
			TimeoutSec:    getEnvInt("WAKILI_API_TIMEOUT_SEC", 30),
			TraceRequests: getEnvBool("WAKILI_API_TRACE", false),
		},
		DevServer: DevServerConfig{
			Port:          getEnv("PORT", "8080"),
			MaxUploadSize: int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 25)) << 20,
		},
		UI: UIConfig{
			DarkMode: getEnvBool("WAKILI_DARK_MODE", false),
		},
	}
}

// Timeout returns the API client timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
