package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application settings, populated from environment variables
type Config struct {
	Port        string
	DBPath      string
	ModelPath   string
	ColumnsPath string
	JWTSecret   string

	// Rate limiting for the predict endpoint
	RateLimit  int
	RateWindow time.Duration
}

// Load reads configuration, applying defaults where unset
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/hydrosense.db"
	}

	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = "./artifacts/pollution_model.json"
	}

	columnsPath := os.Getenv("MODEL_COLUMNS_PATH")
	if columnsPath == "" {
		columnsPath = "./artifacts/model_columns.json"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:        port,
		DBPath:      dbPath,
		ModelPath:   modelPath,
		ColumnsPath: columnsPath,
		JWTSecret:   jwtSecret,
		RateLimit:   envInt("RATE_LIMIT", 60),
		RateWindow:  time.Duration(envInt("RATE_WINDOW_SEC", 60)) * time.Second,
	}
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
