package config

import (
	"os"
	"strconv"
)

// Config holds everything the server reads from the environment.
// Values come from .env (loaded in main) or the process environment.
type Config struct {
	Port          string
	DSN           string
	SessionSecret string
	BaseURL       string
	UploadsDir    string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	AdminEmail string
}

func Load() *Config {
	return &Config{
		Port:          getEnvOrDefault("PORT", "5000"),
		DSN:           getEnvOrDefault("DB_DSN", "root:root@tcp(127.0.0.1:3306)/buildingmaterials?parseTime=true"),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", "dev_session_secret"),
		BaseURL:       getEnvOrDefault("BASE_URL", "http://localhost:5000"),
		UploadsDir:    getEnvOrDefault("UPLOADS_DIR", "./uploads"),

		SMTPHost:   getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:   getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		AdminEmail: getEnvOrDefault("ADMIN_EMAIL", os.Getenv("SMTP_USER")),
	}
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func getEnvIntOrDefault(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}
