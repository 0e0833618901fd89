package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Store engines the server can run on.
const (
	StoreBadger = "badger"
	StoreSQLite = "sqlite"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Addr string
	Env  string

	Store      string
	BadgerPath string
	SQLitePath string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present; OS environment variables always win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:       getEnv("GRIDDLE_ADDR", ":8080"),
		Env:        getEnv("GRIDDLE_ENV", "development"),
		Store:      getEnv("GRIDDLE_STORE", StoreBadger),
		BadgerPath: getEnv("GRIDDLE_BADGER_PATH", "data/badger"),
		SQLitePath: getEnv("GRIDDLE_SQLITE_PATH", "data/griddle.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
