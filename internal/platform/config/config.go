// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	AllowedOrigins []string
	RedisAddr      string
	RedisPassword  string
}

// Load reads the environment and assembles a Config. Missing optional values
// fall back to development defaults; JWTSecret is left empty when unset so
// callers can warn about it.
func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		DatabaseDSN:    databaseDSN(),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitOrigins(getenv("CORS_ALLOWED_ORIGINS", "*")),
		RedisAddr:      os.Getenv("REDIS_HOST") + ":" + getenv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}
}

// databaseDSN builds a MySQL DSN from the DB_* variables.
func databaseDSN() string {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "3306")
	name := getenv("DB_NAME", "jobboard")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
