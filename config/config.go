package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config đọc biến môi trường, tự load file .env nếu có
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

func ConfigOr(key, fallback string) string {
	value := Config(key)
	if value == "" {
		return fallback
	}
	return value
}
