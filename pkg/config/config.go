package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration. It is constructed once at
// startup and passed into the strategies and orchestrator that need it;
// nothing reads the environment after this point.
type Config struct {
	ServerPort string
	LogLevel   string

	TavilyAPIKey string

	StaticTimeout   time.Duration
	PageLoadTimeout time.Duration
	SettleDelay     time.Duration
	SelectorWait    time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		TavilyAPIKey:    getEnv("TAVILY_API_KEY", ""),
		StaticTimeout:   getEnvAsDuration("STATIC_TIMEOUT_SECONDS", 30) * time.Second,
		PageLoadTimeout: getEnvAsDuration("PAGE_LOAD_TIMEOUT_SECONDS", 30) * time.Second,
		SettleDelay:     getEnvAsDuration("RENDER_SETTLE_MS", 5000) * time.Millisecond,
		SelectorWait:    getEnvAsDuration("SELECTOR_WAIT_MS", 5000) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback))
}
