package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds service configuration. Values come from an optional YAML
// file (CONFIG_FILE) with environment variables taking precedence.
type Config struct {
	Port            string `yaml:"port"`
	Environment     string `yaml:"environment"`
	LogLevel        string `yaml:"log_level"`
	RedisURL        string `yaml:"redis_url"`
	WorldDir        string `yaml:"world_dir"`
	ChallengePoints int    `yaml:"challenge_points"` // Awarded on a passing SUBMIT.
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            "8080",
		Environment:     "development",
		LogLevel:        "info",
		RedisURL:        "localhost:6379",
		WorldDir:        "./data",
		ChallengePoints: 100,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.WorldDir = getEnv("WORLD_DIR", cfg.WorldDir)

	if v := os.Getenv("CHALLENGE_POINTS"); v != "" {
		points, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CHALLENGE_POINTS %q: %w", v, err)
		}
		cfg.ChallengePoints = points
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	return nil
}

// SlogLevel parses the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
