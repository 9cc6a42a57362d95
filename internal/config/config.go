// Package config loads planner configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Path of the JSON account file.
	DataFile string

	// Optional YAML file with the expense prompt categories.
	CategoriesFile string

	// Logging
	LogFormat string // "human" or "json"
	LogLevel  string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataFile:       getEnv("DATA_FILE", "data/users.json"),
		CategoriesFile: getEnv("CATEGORIES_FILE", ""),
		LogFormat:      getEnv("LOG_FORMAT", "human"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
