package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend
	APIBaseURL     string
	RequestTimeout time.Duration

	// Local storage
	StorePath string

	// UI timing (milliseconds in the environment)
	FadeDuration  time.Duration
	NavigateDelay time.Duration
	ToastLifetime time.Duration
	ScoreAnimTime time.Duration

	// Quiz
	QuestionBatch int

	// Environment
	Env string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		APIBaseURL:     getEnvOrDefault("CANTARA_API_URL", "http://localhost:8080"),
		RequestTimeout: getEnvAsDurationMs("CANTARA_REQUEST_TIMEOUT_MS", 15000),
		StorePath:      getEnvOrDefault("CANTARA_STORE_PATH", defaultStorePath()),
		FadeDuration:   getEnvAsDurationMs("CANTARA_FADE_MS", 300),
		NavigateDelay:  getEnvAsDurationMs("CANTARA_NAVIGATE_DELAY_MS", 1500),
		ToastLifetime:  getEnvAsDurationMs("CANTARA_TOAST_MS", 3000),
		ScoreAnimTime:  getEnvAsDurationMs("CANTARA_SCORE_ANIM_MS", 500),
		QuestionBatch:  getEnvAsIntOrDefault("CANTARA_QUESTION_BATCH", 5),
		Env:            getEnvOrDefault("ENV", "development"),
	}

	return cfg
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cantara.db"
	}
	return home + "/.cantara/cantara.db"
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationMs(key string, defaultMs int) time.Duration {
	return time.Duration(getEnvAsIntOrDefault(key, defaultMs)) * time.Millisecond
}
