package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	APIKey      string
	CatalogFile string
	LogLevel    string
	Location    *time.Location

	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

// Load reads the optional env files (".env" when none are given) and then
// the process environment. Variables already set are not overridden.
func Load(envFiles ...string) (*Config, error) {
	loaded := godotenv.Load(envFiles...) == nil

	tz := getEnv("REPORT_TIMEZONE", "Asia/Shanghai")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: invalid REPORT_TIMEZONE %q: %w", tz, err)
	}

	return &Config{
		Port:          getEnv("HTTP_PORT", ":8080"),
		APIKey:        os.Getenv("API_MASTER_KEY"),
		CatalogFile:   os.Getenv("CATALOG_FILE"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Location:      loc,
		EnvFileLoaded: loaded,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
