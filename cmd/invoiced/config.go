package main

import "os"

// Config holds server settings resolved from environment variables.
type Config struct {
	// Addr is the listen address (INVOICED_ADDR, default ":8080").
	Addr string

	// LogLevel is one of debug, info, warn, error (INVOICED_LOG_LEVEL).
	LogLevel string

	// LogFormat is "text" or "json" (INVOICED_LOG_FORMAT).
	LogFormat string
}

// LoadConfig reads configuration from the environment.
func LoadConfig() Config {
	return Config{
		Addr:      getEnv("INVOICED_ADDR", ":8080"),
		LogLevel:  getEnv("INVOICED_LOG_LEVEL", "info"),
		LogFormat: getEnv("INVOICED_LOG_FORMAT", "text"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
