package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsDurationMs(t *testing.T) {
	os.Setenv("TEST_DUR_1", "250")
	defer os.Unsetenv("TEST_DUR_1")

	if got := getEnvAsDurationMs("TEST_DUR_1", 300); got != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", got)
	}
	if got := getEnvAsDurationMs("TEST_DUR_MISSING", 300); got != 300*time.Millisecond {
		t.Errorf("Expected 300ms default, got %v", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIBaseURL == "" {
		t.Error("Expected non-empty API base URL")
	}
	if cfg.FadeDuration != 300*time.Millisecond {
		t.Errorf("Expected 300ms fade default, got %v", cfg.FadeDuration)
	}
	if cfg.QuestionBatch != 5 {
		t.Errorf("Expected question batch of 5, got %d", cfg.QuestionBatch)
	}
}
