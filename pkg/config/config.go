package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBase       string
	Origin        string
	Referer       string
	UserAgent     string
	Workers       int
	MaxIterations int64
	HTTPTimeout   time.Duration
	LogLevel      string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func atoi64(s string, def int64) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return def
}

func Parse() Config {
	timeout, _ := time.ParseDuration(getenv("HTTP_TIMEOUT", "10s"))
	return Config{
		APIBase:       getenv("CAP_API_BASE", ""),
		Origin:        getenv("CAP_ORIGIN", ""),
		Referer:       getenv("CAP_REFERER", ""),
		UserAgent:     getenv("CAP_USER_AGENT", ""),
		Workers:       atoi(getenv("WORKERS", "4"), 4),
		MaxIterations: atoi64(getenv("MAX_ITERATIONS", "10000000"), 10000000),
		HTTPTimeout:   timeout,
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}
