package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	DBMaxConns        int32
	MigrationsPath    string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	LogLevel          slog.Level
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RedisURL       string
	ReportCacheTTL time.Duration

	RateLimit          string
	LoginRateLimit     string
	CORSAllowedOrigins []string

	AdminEmail    string
	AdminName     string
	AdminPassword string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "bizledger")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REPORT_CACHE_TTL", "10m")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_NAME", "Administrator")
	v.SetDefault("ADMIN_PASSWORD", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		DBMaxConns:     v.GetInt32("DB_MAX_CONNS"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		RedisURL:       v.GetString("REDIS_URL"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
		AdminEmail:     v.GetString("ADMIN_EMAIL"),
		AdminName:      v.GetString("ADMIN_NAME"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	jwtExpiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY_DURATION"))
	if err != nil || jwtExpiry <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION %q", v.GetString("JWT_EXPIRY_DURATION"))
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cacheTTL, err := time.ParseDuration(v.GetString("REPORT_CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_CACHE_TTL: %w", err)
	}
	cfg.ReportCacheTTL = cacheTTL

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}

	return cfg, nil
}
