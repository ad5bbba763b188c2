// Package conf loads service configuration from environment variables.
// It is read once at startup and treated as immutable afterwards; request
// handling code only ever sees it through constructor arguments.
package conf

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddress string
	DatabaseURL string

	// JWTKey and JWTAlg must be configured identically on the auth and
	// orders services; a mismatch makes every cross-service token fail
	// signature verification.
	JWTKey   string
	JWTAlg   string
	TokenTTL time.Duration
}

// Defaults carries the per-service fallback values. The signing defaults
// are shared so that an unconfigured local deployment of both services
// still accepts each other's tokens.
type Defaults struct {
	HTTPAddress string
	DatabaseURL string
}

func Load(d Defaults) *Config {
	ttlMinutes := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)

	return &Config{
		HTTPAddress: getEnv("HTTP_ADDRESS", d.HTTPAddress),
		DatabaseURL: getEnv("DATABASE_URL", d.DatabaseURL),
		JWTKey:      getEnv("JWT_KEY", "mysecretkey"),
		JWTAlg:      getEnv("JWT_ALG", "HS256"),
		TokenTTL:    time.Duration(ttlMinutes) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
