package config

import (
	"os"
)

type Config struct {
	DatabaseURL    string
	Port           string
	UploadDir      string
	AllowedOrigins string
	AdminUsername  string
	AdminPassword  string
}

func LoadConfig() *Config {
	return &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           getEnv("PORT", "8080"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads/events"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:30000"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
