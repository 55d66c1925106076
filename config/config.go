package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to environment: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
