package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort     = "8080"
	defaultDSN      = "mechbook.db"
	defaultJWTTTL   = "720h" // 30 days, matches the issued session lifetime
	defaultDemoMode = "false"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// DemoMode serves the shop directory from bundled fixtures instead of
	// the database. Explicit opt-in only, never a silent fallback.
	DemoMode bool

	CORSAllowedOrigins []string
}

// Load reads .env (when present) and assembles the configuration.
// JWT_SECRET has no default and must be set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errJWTSecretMissing
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, err
	}

	demo, err := strconv.ParseBool(getEnv("DEMO_MODE", defaultDemoMode))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:               getEnv("PORT", defaultPort),
		DatabaseURL:        getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:          secret,
		JWTTTL:             ttl,
		DemoMode:           demo,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
