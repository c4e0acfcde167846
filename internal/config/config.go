package config

import (
	"os"
	"runtime"
	"strconv"
	"time"
)

type Config struct {
	// HTTP server
	Port   string
	APIKey string // empty disables bearer auth

	// Batch parsing
	Workers int

	// Upload limits
	MaxUploadBytes int64

	// Async job state
	JobTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port:           envOr("PORT", "8070"),
		APIKey:         os.Getenv("SECPARSE_API_KEY"),
		Workers:        envInt("WORKERS", runtime.NumCPU()),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 104857600), // 100MB; archives with attachments are large
		JobTTL:         envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 104857600
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
