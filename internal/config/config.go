package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Log    LogConfig
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	Port int
}

// StoreConfig holds the persistence configuration
type StoreConfig struct {
	// Path of the SQLite database file backing the state slot.
	Path string
}

// LogConfig holds the logging configuration
type LogConfig struct {
	Level string
}

// LoadConfig loads the configuration from a .env file (if present) and the
// environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "data/worship-planner.db"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions to read environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
