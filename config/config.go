package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port          string
	DatabaseDSN   string
	JWTSecret     []byte
	JWTExpiration time.Duration
}

// Load collects all runtime settings from the environment in one place.
// The returned struct is passed explicitly to whatever needs it; nothing
// else reads os.Getenv.
func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseDSN:   buildDSN(),
		JWTSecret:     []byte(getenv("JWT_SECRET", "change-this-in-production")),
		JWTExpiration: 24 * time.Hour,
	}
}

func buildDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "conduit"),
		getenv("DB_SSLMODE", "disable"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
