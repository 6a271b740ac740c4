package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the concierge, loaded from the
// environment (and a .env file in local development).
type AppConfig struct {
	ModelID     string
	APIKey      string
	RedisAddr   string
	CatalogFile string
	Port        string
}

// LoadConfig loads configuration from a .env file and environment variables.
// A missing API key for the selected model is a fatal configuration error,
// reported to the operator before any query is processed.
func LoadConfig() (*AppConfig, error) {
	// In release mode (Docker), configuration comes straight from the
	// environment; the .env file is a local-development convenience.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		ModelID:     os.Getenv("MODEL_ID"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CatalogFile: os.Getenv("CATALOG_FILE"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.ModelID == "" {
		cfg.ModelID = "gpt-4o"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	apiKey, err := resolveAPIKey(cfg.ModelID)
	if err != nil {
		return nil, err
	}
	cfg.APIKey = apiKey

	return cfg, nil
}

// resolveAPIKey maps the model prefix to its provider credential.
func resolveAPIKey(modelID string) (string, error) {
	var envVar string
	switch {
	case strings.HasPrefix(modelID, "gpt"):
		envVar = "OPENAI_API_KEY"
	case strings.HasPrefix(modelID, "gemini"):
		envVar = "GEMINI_API_KEY"
	default:
		return "", fmt.Errorf("unknown model provider for %s", modelID)
	}

	apiKey := os.Getenv(envVar)
	if apiKey == "" {
		return "", fmt.Errorf("%s is not set (required for model %s)", envVar, modelID)
	}
	return apiKey, nil
}
