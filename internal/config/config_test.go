package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "ALLOWED_ORIGINS", "API_KEY", "MAX_UPLOAD_BYTES",
		"AI_ASSIST", "GEMINI_API_KEY", "GEMINI_MODEL", "LOG_JSON", "LOG_DEBUG",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.Auth.APIKey)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.False(t, cfg.AI.Enabled)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://resumify.co, https://www.resumify.co")
	t.Setenv("API_KEY", "secret")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("AI_ASSIST", "true")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_DEBUG", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, []string{"https://resumify.co", "https://www.resumify.co"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "secret", cfg.Auth.APIKey)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxFileSize)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "gm-key", cfg.AI.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Log.Debug)
}

func TestLoad_IgnoresUnparsableValues(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	t.Setenv("AI_ASSIST", "definitely")

	cfg := Load()

	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.False(t, cfg.AI.Enabled)
}

func TestConfig_AIAssistActive(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		apiKey  string
		want    bool
	}{
		{name: "enabled with key", enabled: true, apiKey: "k", want: true},
		{name: "enabled without key", enabled: true, apiKey: "", want: false},
		{name: "key without flag", enabled: false, apiKey: "k", want: false},
		{name: "neither", enabled: false, apiKey: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AI: AIConfig{Enabled: tt.enabled, APIKey: tt.apiKey}}
			assert.Equal(t, tt.want, cfg.AIAssistActive())
		})
	}
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseList(" a , b ,, "))
	assert.Empty(t, parseList(""))
	assert.Equal(t, []string{"*"}, parseList("*"))
}
