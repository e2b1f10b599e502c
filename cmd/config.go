package cmd

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the runtime settings of the tracking service.
type Config struct {
	HTTPPort         string
	JWTSecret        string
	SecureCookies    bool
	SimulateMovement bool
	SeedPassword     string
}

// LoadConfig reads settings from the environment, with .env as an optional
// local override. Missing keys fall back to development defaults.
func LoadConfig() Config {
	_ = godotenv.Load(".env")

	return Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-only-secret"),
		SecureCookies:    getEnv("SECURE_COOKIES", "false") == "true",
		SimulateMovement: getEnv("SIMULATE_MOVEMENT", "true") == "true",
		SeedPassword:     getEnv("SEED_PASSWORD", "password"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
