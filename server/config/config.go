// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultModel = "gemini-1.5-flash"

type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads configuration and configures the global log level. A missing
// API key is logged but does not stop startup: the first chat request fails
// instead, matching the deployment this replaces.
func Load() Config {
	_ = godotenv.Load()

	configureLogging(os.Getenv("LOG_LEVEL"))

	cfg := Config{
		Port:         os.Getenv("PORT"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = defaultModel
	}
	if cfg.GeminiAPIKey == "" {
		log.Error("GEMINI_API_KEY is not set; chat requests will fail")
	}
	return cfg
}

func configureLogging(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
