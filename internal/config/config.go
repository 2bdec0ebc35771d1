package config

import (
	"fmt"
	"os"
)

// Config is the full, immutable process configuration. It is built
// once at startup and handed to the components that need it; business
// logic never reads the environment directly.
type Config struct {
	AppPort string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	JWTSecret string

	FrontendURL string
}

// Load reads the configuration from the environment. Missing required
// values are a hard error: the process must not start half-configured,
// in particular without a signing secret.
func Load() (Config, error) {
	cfg := Config{
		AppPort: getEnvOrDefault("APP_PORT", "8080"),

		MongoURI:      os.Getenv("MONGODB_URL"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "rg_ecom"),

		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_CALLBACK_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		FrontendURL: os.Getenv("FRONTEND_URL"),
	}

	required := []struct {
		name  string
		value string
	}{
		{"MONGODB_URL", cfg.MongoURI},
		{"GOOGLE_CLIENT_ID", cfg.GoogleClientID},
		{"GOOGLE_CLIENT_SECRET", cfg.GoogleClientSecret},
		{"GOOGLE_CALLBACK_URL", cfg.GoogleRedirectURL},
		{"JWT_SECRET", cfg.JWTSecret},
		{"FRONTEND_URL", cfg.FrontendURL},
	}
	for _, r := range required {
		if r.value == "" {
			return Config{}, fmt.Errorf("config: %s is required", r.name)
		}
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
