package config

import (
	"os"
	"time"
)

type Config struct {
	Port         string
	DataDir      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads configuration from the environment with sane defaults.
// godotenv is loaded by main before this runs.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "3000"),
		DataDir:      getEnv("DATA_DIR", "data"),
		ReadTimeout:  getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout: getDuration("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  getDuration("IDLE_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
