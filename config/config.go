package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds every environment-level setting the server needs. It is
// loaded once in main and handed to whoever needs a piece of it.
type Config struct {
	Port           string
	StorageBackend string // "sqlite" or "memory"
	SQLitePath     string

	JWTSecret      string
	AdminJWTSecret string

	UploadDir            string
	CloudinaryCloudName  string
	CloudinaryAPIKey     string
	CloudinaryAPISecret  string
	CloudinaryFolder     string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		StorageBackend: getEnv("STORAGE_BACKEND", "sqlite"),
		SQLitePath:     getEnv("SQLITE_PATH", "fitness.db"),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "fitness"),

		SMTPHost:  getEnv("SMTP_HOST", ""),
		SMTPPort:  smtpPort,
		EmailUser: getEnv("EMAIL_USER", ""),
		EmailPass: getEnv("EMAIL_PASS", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if cfg.AdminJWTSecret == "" {
		log.Fatal("ADMIN_JWT_SECRET is not set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
