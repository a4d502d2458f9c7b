package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Client  ClientConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type CatalogConfig struct {
	PageSize int
}

type ClientConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

func Load() *Config {
	_ = godotenv.Load()

	pageSize, _ := strconv.Atoi(getEnv("CATALOG_PAGE_SIZE", "12"))
	if pageSize <= 0 {
		pageSize = 12
	}
	clientTimeout, _ := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "10"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Catalog: CatalogConfig{
			PageSize: pageSize,
		},
		Client: ClientConfig{
			BaseURL:        getEnv("CATALOG_BASE_URL", "http://localhost:8080"),
			TimeoutSeconds: clientTimeout,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
