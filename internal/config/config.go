// Package config loads user preferences from ~/.confide/config.yaml with
// environment overrides (CONFIDE_*). A missing file yields defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	ServerURL string `yaml:"server_url" json:"server_url"` // Confession API base URL

	// Checkout
	CheckoutPort int `yaml:"checkout_port" json:"checkout_port"` // Loopback port for the payment redirect; 0 = ephemeral

	// Notifications
	PollSeconds int `yaml:"poll_seconds" json:"poll_seconds"` // Unread-count poll interval, clamped to 5..30

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// DefaultConfig returns default settings with env overrides applied.
func DefaultConfig() *Config {
	// Read .env files if present; not an error when absent.
	_ = godotenv.Load(".env", ".env.local")

	home, _ := os.UserHomeDir()
	logPath := ""
	if home != "" {
		logPath = filepath.Join(home, ".confide", "logs", "confide.log")
	}

	return &Config{
		ServerURL:    getEnv("CONFIDE_SERVER_URL", "https://api.confide.app"),
		CheckoutPort: getEnvInt("CONFIDE_CHECKOUT_PORT", 0),
		PollSeconds:  getEnvInt("CONFIDE_POLL_SECONDS", 15),
		LogLevel:     getEnv("CONFIDE_LOG_LEVEL", "INFO"),
		LogFile:      getEnv("CONFIDE_LOG_FILE", logPath),
		LogConsole:   getEnv("CONFIDE_LOG_CONSOLE", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".confide", "config.yaml"), nil
}

// Load loads config from ~/.confide/config.yaml
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Return defaults if no config
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves config to ~/.confide/config.yaml
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
