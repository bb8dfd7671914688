package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	StorageURL       string
	StorageKey       string
	StorageBucket    string
	SearchWebhookURL string
	UploadWebhookURL string
	LogJSON          bool
}

// placeholders are the values shipped in .env.example; treating them as unset
// catches a copied example file that was never filled in.
var placeholders = map[string]bool{
	"your_database_url":       true,
	"your_storage_url":        true,
	"your_storage_access_key": true,
	"your_webhook_url":        true,
}

// Load reads environment variables, optionally from a .env file if present,
// and validates the external backend settings. A missing storage URL or
// access key would otherwise only surface on the first delete, so the
// service refuses to start instead.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		StorageURL:       os.Getenv("STORAGE_URL"),
		StorageKey:       os.Getenv("STORAGE_KEY"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "CVs"),
		SearchWebhookURL: os.Getenv("SEARCH_WEBHOOK_URL"),
		UploadWebhookURL: os.Getenv("UPLOAD_WEBHOOK_URL"),
		LogJSON:          getEnv("LOG_FORMAT", "console") == "json",
	}

	required := []struct{ name, value string }{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"STORAGE_URL", cfg.StorageURL},
		{"STORAGE_KEY", cfg.StorageKey},
		{"SEARCH_WEBHOOK_URL", cfg.SearchWebhookURL},
		{"UPLOAD_WEBHOOK_URL", cfg.UploadWebhookURL},
	}
	for _, r := range required {
		v := strings.TrimSpace(r.value)
		if v == "" {
			return Config{}, fmt.Errorf("%s is not set", r.name)
		}
		if placeholders[strings.ToLower(v)] {
			return Config{}, fmt.Errorf("%s still holds the placeholder value from .env.example", r.name)
		}
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
