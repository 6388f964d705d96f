package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Login endpoint rate limit, in ulule/limiter notation (e.g. "10-M").
	LoginRateLimit string

	// CORS origin of the React frontend.
	FrontendBaseURL string

	// Bootstrap admin, created on first start if missing.
	DefaultAdminUsername string
	DefaultAdminPassword string
	DefaultAdminFullName string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Real environment variables override .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "shopbook-backend")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("DEFAULT_ADMIN_USERNAME", "admin")
	viper.SetDefault("DEFAULT_ADMIN_PASSWORD", "password123")
	viper.SetDefault("DEFAULT_ADMIN_FULL_NAME", "System Admin")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.DefaultAdminUsername = viper.GetString("DEFAULT_ADMIN_USERNAME")
	cfg.DefaultAdminPassword = viper.GetString("DEFAULT_ADMIN_PASSWORD")
	cfg.DefaultAdminFullName = viper.GetString("DEFAULT_ADMIN_FULL_NAME")

	return cfg, nil
}
