package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	JWTSecret   string
	FrontendURL string
	// DataDir holds the client-side local state (session, moodboard).
	DataDir   string
	UploadDir string
	// SampleDataEnabled substitutes static reference data when a remote
	// lookup fails or comes back empty, keeping demo environments populated.
	SampleDataEnabled bool
	// MongoDBURI is optional; without it the server runs on the in-memory
	// backend.
	MongoDBURI          string
	CloudinaryCloudName string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                getEnvWithDefault("PORT", "8080"),
		Environment:         getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:            getEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:           getEnvWithDefault("JWT_SECRET", "exhibit-dev-secret"),
		FrontendURL:         getEnvWithDefault("FRONTEND_URL", "http://localhost:3000"),
		DataDir:             getEnvWithDefault("DATA_DIR", ".exhibit"),
		UploadDir:           getEnvWithDefault("UPLOAD_DIR", "uploads"),
		SampleDataEnabled:   getEnvBool("SAMPLE_DATA_ENABLED", true),
		MongoDBURI:          os.Getenv("MONGODB_URI"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
	}

	if cfg.IsProduction() && os.Getenv("JWT_SECRET") == "" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
