package config

import "os"

// Config holds all configuration for the application, loaded from
// environment variables at startup.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
	LogLevel     string
}

// Load reads configuration from environment variables.
// DATABASE_URL and DATABASE_NAME have no defaults: when unset the server
// still starts, but every store operation reports the store as unavailable
// and the /test endpoint surfaces the missing configuration.
func Load() *Config {
	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Port:         getEnv("PORT", "8000"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
