package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN          string
	ServerPort     string
	SessionSecret  string
	UploadsDir     string
	FrontendURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
		log.Printf("ignoring invalid %s=%q", key, raw)
	}
	return fallback
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		ServerPort:     os.Getenv("SERVER_PORT"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		UploadsDir:     os.Getenv("UPLOADS_DIR"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		DBMaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 5),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "uploads"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:5173"
	}

	return cfg
}
