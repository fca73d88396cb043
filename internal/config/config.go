package config

import (
	"os"

	"github.com/joho/godotenv"
)

// cloudinaryPlaceholder is the value the hosting template pre-fills before real
// credentials are provisioned. Treated the same as unset.
const cloudinaryPlaceholder = "demo"

type Config struct {
	// Server
	Port string
	Env  string

	// Database (optional; in-memory store when empty)
	DatabaseURL string

	// Local upload storage
	StoragePath string

	// Cloudinary
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:                getEnvOrDefault("PORT", "8080"),
		Env:                 getEnvOrDefault("ENV", "development"),
		DatabaseURL:         getEnvOrDefault("DATABASE_URL", ""),
		StoragePath:         getEnvOrDefault("STORAGE_PATH", "./uploads"),
		CloudinaryCloudName: getEnvOrDefault("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnvOrDefault("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnvOrDefault("CLOUDINARY_API_SECRET", ""),
		FrontendURL:         getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}
}

// CloudinaryConfigured reports whether all three credential values are present
// and none of them is the placeholder.
func (c *Config) CloudinaryConfigured() bool {
	for _, v := range []string{c.CloudinaryCloudName, c.CloudinaryAPIKey, c.CloudinaryAPISecret} {
		if v == "" || v == cloudinaryPlaceholder {
			return false
		}
	}
	return true
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
