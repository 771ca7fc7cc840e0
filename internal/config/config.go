package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port           string
	AllowedOrigins string

	// Dataset source
	DataPath string

	// S3 source (used instead of DataPath when enabled)
	S3Enabled   bool
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Object    string
	S3Region    string
	S3UseSSL    bool

	// Cleaning policy
	PriceBandMin float64
	PriceBandMax float64

	// Aggregation policy
	MinSampleSize int

	// Optional dataset refresh; zero disables it
	ReloadTTL time.Duration

	// Environment
	Environment string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		DataPath:       getEnv("DATA_PATH", "./data/listings.csv"),
		S3Enabled:      getBoolEnv("S3_ENABLED", false),
		S3Endpoint:     getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3Bucket:       getEnv("S3_BUCKET", "datasets"),
		S3Object:       getEnv("S3_OBJECT", "listings.csv"),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3UseSSL:       getBoolEnv("S3_USE_SSL", false),
		PriceBandMin:   getFloatEnv("PRICE_BAND_MIN", 100000),
		PriceBandMax:   getFloatEnv("PRICE_BAND_MAX", 2000000000),
		MinSampleSize:  getIntEnv("MIN_SAMPLE_SIZE", 10),
		ReloadTTL:      getDurationEnv("RELOAD_TTL_MINUTES", 0) * time.Minute,
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return time.Duration(intVal)
		}
	}
	return time.Duration(defaultValue)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
