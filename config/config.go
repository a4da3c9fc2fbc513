package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT   string
	DB_URL string

	ADMIN_USERNAME string
	ADMIN_PASSWORD string
	SECRET_KEY     string

	UPLOAD_DIR  string
	CORS_ORIGIN string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")

	ADMIN_USERNAME = getEnv("ADMIN_USERNAME", "admin")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "admin123")
	SECRET_KEY = getEnv("SECRET_KEY", "fallback-secret-key")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "./uploads")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
