package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	PrintfulAPIKey  string
	PrintfulBaseURL string

	EmailAPIKey     string
	EmailBaseURL    string
	EmailFrom       string
	StoreOwnerEmail string

	AdminJWTSecret string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),

		PrintfulAPIKey:  os.Getenv("PRINTFUL_APIKEY"),
		PrintfulBaseURL: os.Getenv("PRINTFUL_BASE_URL"),

		EmailAPIKey:     os.Getenv("EMAIL_APIKEY"),
		EmailBaseURL:    os.Getenv("EMAIL_BASE_URL"),
		EmailFrom:       os.Getenv("EMAIL_FROM"),
		StoreOwnerEmail: os.Getenv("STORE_OWNER_EMAIL"),

		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.PrintfulBaseURL == "" {
		cfg.PrintfulBaseURL = "https://api.printful.com"
	}
	if cfg.EmailBaseURL == "" {
		cfg.EmailBaseURL = "https://api.resend.com"
	}

	return cfg
}
