// Package config provides environment-driven configuration for the service.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the full service configuration.
type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Upload UploadConfig
	AI     AIConfig
	Log    LogConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// AuthConfig holds API key settings. An empty APIKey disables authentication,
// which is the development default.
type AuthConfig struct {
	APIKey string
}

// UploadConfig holds limits applied to uploaded resume files.
type UploadConfig struct {
	MaxFileSize int64
}

// AIConfig holds Gemini settings for AI-assisted extraction. Assist runs only
// when Enabled is set and an API key is present.
type AIConfig struct {
	Enabled bool
	APIKey  string
	Model   string
}

// LogConfig holds logger settings.
type LogConfig struct {
	JSON  bool
	Debug bool
}

// Load reads configuration from the environment, consulting a .env file when
// one exists next to the process.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8000"),
			Env:            getEnv("ENV", "development"),
			AllowedOrigins: parseList(getEnv("ALLOWED_ORIGINS", "*")),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_UPLOAD_BYTES", 10485760),
		},
		AI: AIConfig{
			Enabled: getEnvAsBool("AI_ASSIST", false),
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", ""),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", false),
		},
	}
}

// AIAssistActive reports whether AI-assisted extraction should run.
func (c *Config) AIAssistActive() bool {
	return c.AI.Enabled && c.AI.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// parseList splits a comma-separated value into trimmed non-empty entries.
func parseList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
