package config

import (
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // Token lifetimes

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string        // Application port
	DBDriver        string        // Database driver: mysql, postgres or sqlite
	DBUser          string        // Database user
	DBPassword      string        // Database password
	DBHost          string        // Database host
	DBPort          string        // Database port
	DBName          string        // Database name
	DBSSLMode       string        // Postgres sslmode
	DBPath          string        // SQLite file path
	JWTSecret       string        // JWT secret key
	AccessTokenTTL  time.Duration // Access token lifetime
	RefreshTokenTTL time.Duration // Refresh token lifetime
	RedisAddr       string        // Redis server address
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	IsProd          bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	accessTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TTL: %w", err)
	}
	refreshTTL, err := time.ParseDuration(getEnv("JWT_REFRESH_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TTL: %w", err)
	}

	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "8000"),             // Application port
		DBDriver:        getEnv("DB_DRIVER", "mysql"),           // Database driver
		DBUser:          os.Getenv("DB_USER"),                   // Database user
		DBPassword:      os.Getenv("DB_PASSWORD"),               // Database password
		DBHost:          getEnv("DB_HOST", "localhost"),         // Database host
		DBPort:          os.Getenv("DB_PORT"),                   // Database port
		DBName:          getEnv("DB_NAME", "notes"),             // Database name
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),        // Postgres sslmode
		DBPath:          getEnv("DB_PATH", "notes.db"),          // SQLite file path
		JWTSecret:       os.Getenv("JWT_SECRET"),                // JWT secret key
		AccessTokenTTL:  accessTTL,                              // Access token lifetime
		RefreshTokenTTL: refreshTTL,                             // Refresh token lifetime
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"), // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),                // Redis password
		RedisDB:         redisDB,                                // Redis database number
		IsProd:          os.Getenv("IS_PROD") == "true",         // Is production environment
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token lifetimes must be positive")
	}
	switch cfg.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

// getEnv returns the variable value or a default when it is unset
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
