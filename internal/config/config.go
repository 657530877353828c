package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabasePath string
	UploadDir    string
	LogLevel     string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found, using system environment")
	}

	return Config{
		Port:         EnvIntDefault("PORT", 3000),
		DatabasePath: EnvDefault("DATABASE_PATH", "/tmp/loja.db"),
		UploadDir:    EnvDefault("UPLOAD_DIR", "/tmp/uploads"),
		LogLevel:     EnvDefault("LOG_LEVEL", "info"),
	}
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
