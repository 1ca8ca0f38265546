package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Port        string
	CatalogPath string
	CartBackend string
	CartDir     string
	CartTTL     time.Duration
	JWTSecret   string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cartTTL, err := time.ParseDuration(getEnv("CART_TTL", "720h"))
	if err != nil || cartTTL <= 0 {
		cartTTL = 720 * time.Hour
	}

	AppConfig = &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("APP_PORT", getEnv("PORT", "8082")),
		CatalogPath: getEnv("CATALOG_PATH", "data/products.json"),
		CartBackend: getEnv("CART_BACKEND", "redis"),
		CartDir:     getEnv("CART_DIR", "./data/carts"),
		CartTTL:     cartTTL,
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
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
