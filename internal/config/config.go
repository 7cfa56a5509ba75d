package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort         string
	DatabasePath     string
	UploadDir        string
	AdminPassword    string
	RedisAddr        string
	MaxUploadBytes   int64
	MaxBodyBytes     int64
	RequestTimeout   time.Duration
	DBBusyTimeout    time.Duration
	SubmitRateLimit  int
	SubmitRateWindow time.Duration
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabasePath:     getEnv("DATABASE_PATH", "rental_assistance.db"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		MaxUploadBytes:   getInt64("MAX_UPLOAD_BYTES", 5<<20),
		RequestTimeout:   getDuration("REQUEST_TIMEOUT", 30*time.Second),
		DBBusyTimeout:    getDuration("DB_BUSY_TIMEOUT", 5*time.Second),
		SubmitRateLimit:  getInt("SUBMIT_RATE_LIMIT", 10),
		SubmitRateWindow: getDuration("SUBMIT_RATE_WINDOW", time.Minute),
	}

	// Two full uploads plus headroom for the form fields.
	cfg.MaxBodyBytes = getInt64("MAX_BODY_BYTES", 2*cfg.MaxUploadBytes+(1<<20))

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
