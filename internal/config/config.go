package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	GinMode  string
	Port     string
	MongoURL string
	MongoDB  string
}

func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		if err := godotenv.Load(); err != nil {
			log.Debug().Msg("no .env file found, using environment variables")
		}
	}

	cfg := &Config{
		GinMode:  getenv("GIN_MODE", "debug"),
		Port:     getenv("PORT", "3000"),
		MongoURL: os.Getenv("MONGO_URL"),
		MongoDB:  getenv("MONGO_DB", "inventario"),
	}

	if cfg.MongoURL == "" {
		log.Fatal().Msg("MONGO_URL is required")
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
