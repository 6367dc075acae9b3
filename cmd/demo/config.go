package main

import (
	"os"
	"time"

	"github.com/arzav18/interview-prep-go/pkg/userapi"
)

// Config holds the demo server configuration, loaded from environment
// variables.
type Config struct {
	Port          string
	UserAPIBase   string
	RandomAPIBase string
	FetchTimeout  time.Duration
	CORSOrigins   string
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		UserAPIBase:   getEnv("USER_API_BASE", userapi.DefaultUserBase),
		RandomAPIBase: getEnv("RANDOM_API_BASE", userapi.DefaultRandomBase),
		FetchTimeout:  getEnvDuration("FETCH_TIMEOUT", 8*time.Second),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
