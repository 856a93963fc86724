package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults match the per-client quota the API advertises to callers.
const (
	DefaultRequestsPerMinute = 60
	DefaultBurst             = 10
)

// defaultUnlimitedPaths returns the paths exempt from rate limiting. Health
// probes and the root status endpoint stay reachable when a client is
// throttled.
func defaultUnlimitedPaths() map[string]bool {
	return map[string]bool{
		"/":       true,
		"/health": true,
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	requestsPerMinute := getEnvInt("RATE_LIMIT_RPM", DefaultRequestsPerMinute)
	burst := getEnvInt("RATE_LIMIT_BURST", DefaultBurst)
	cleanupInterval := getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute)

	whitelist := parseIPList(getEnvString("RATE_LIMIT_WHITELIST", ""))
	blacklist := parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", ""))

	return &Config{
		Enabled:           enabled,
		RequestsPerMinute: requestsPerMinute,
		Burst:             burst,
		CleanupInterval:   cleanupInterval,
		UnlimitedPaths:    defaultUnlimitedPaths(),
		Whitelist:         whitelist,
		Blacklist:         blacklist,
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	ips := strings.Split(list, ",")
	for _, ip := range ips {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}
