package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret           string
	JWTIssuer           string
	JWTAudience         string
	JWTAccessTokenTTL   time.Duration
	JWTRefreshTokenTTL  time.Duration
	FirebaseCredentials string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessHours := getEnvInt("JWT_ACCESS_TOKEN_VALIDITY_HOURS", 3)
	refreshDays := getEnvInt("JWT_REFRESH_TOKEN_VALIDITY_DAYS", 7)

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseDSN:         getEnv("DATABASE_DSN", "host=localhost user=xsched password=xsched dbname=xsched port=5432 sslmode=disable"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTIssuer:           getEnv("JWT_ISSUER", "https://localhost:7143"),
		JWTAudience:         getEnv("JWT_AUDIENCE", "https://localhost:7143"),
		JWTAccessTokenTTL:   time.Duration(accessHours) * time.Hour,
		JWTRefreshTokenTTL:  time.Duration(refreshDays) * 24 * time.Hour,
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
