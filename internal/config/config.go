package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Noam97/mini-project-manager/internal/constants"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	TokenTTL   time.Duration
	GinMode    string
	ListenAddr string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using environment and defaults")
		}
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "projectuser"),
		DBPassword: getEnv("DB_PASSWORD", "projectpassword"),
		DBName:     getEnv("DB_NAME", "mini_project_manager"),
		JWTSecret:  getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTL:   getDurationEnv("TOKEN_TTL", constants.DefaultTokenTTL),
		GinMode:    getEnv("GIN_MODE", "debug"),
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration in %s: %v, using default", key, err)
		return defaultValue
	}
	return d
}
