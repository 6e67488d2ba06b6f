package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// EnvConfig is everything the tracker reads from the environment.
// Postgres (DBDSN) holds users, badges and submission reference rows;
// Mongo (MongoURI/MongoDB) holds the raw activity payloads and the
// audit trail.
type EnvConfig struct {
	AppPort   string
	DBDSN     string
	MongoURI  string
	MongoDB   string
	JWTSecret string
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	Env = EnvConfig{
		AppPort:   envOr("APP_PORT", "3000"),
		DBDSN:     os.Getenv("DB_DSN"),
		MongoURI:  envOr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   envOr("MONGO_DB_NAME", "leaps"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if Env.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
