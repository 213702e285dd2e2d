package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	UpstreamAPIURL string
	DataDir        string
	RedisURL       string
	RedisAddr      string
	RedisPassword  string
	AdminEmail     string
	AdminPassword  string
	OriginURL      string
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPass       string
	SMTPFrom       string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "8082")),
		UpstreamAPIURL: getEnv("UPSTREAM_API_URL", "https://api-e-commerce.tenzorsoft.uz"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@gmail.com"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		OriginURL:      os.Getenv("ORIGIN_URL"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
