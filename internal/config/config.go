package config

import (
	"os"
	"strings"
	"time"
)

const (
	// Issued tokens live one hour in production. Dev mode hands out
	// long-lived tokens so a local client session survives restarts.
	prodTokenTTL = time.Hour
	devTokenTTL  = 1000 * time.Hour
)

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() Config {
	mode := getenv("MODE", "production")

	tokenTTL := prodTokenTTL
	if mode == "dev" {
		tokenTTL = devTokenTTL
	}

	return Config{
		Server: ServerConfig{
			Port: getenv("PORT", "5000"),
			Mode: mode,
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  tokenTTL,
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
