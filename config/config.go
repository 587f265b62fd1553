package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv charge le fichier .env s'il existe.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

// GetEnv lit une variable d'environnement.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault lit une variable d'environnement avec valeur de repli.
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
