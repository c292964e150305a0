package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is centralized process configuration. Values come from an optional
// YAML file named by CONFIG_FILE, with environment variables taking
// precedence over the file.
type Config struct {
	ServiceName   string `yaml:"serviceName"`
	HTTPPort      string `yaml:"httpPort"`
	PostgresDSN   string `yaml:"postgresDSN"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`

	StaleDraftMaxAge   time.Duration `yaml:"staleDraftMaxAge"`
	WorkerPollInterval time.Duration `yaml:"workerPollInterval"`

	EnableStaleDraftCleanup bool `yaml:"enableStaleDraftCleanup"`
}

func Load() (Config, error) {
	cfg := Config{
		ServiceName:             "archivum",
		HTTPPort:                "8080",
		StaleDraftMaxAge:        30 * 24 * time.Hour,
		WorkerPollInterval:      time.Minute,
		EnableStaleDraftCleanup: true,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvString(&cfg.ServiceName, "SERVICE_NAME")
	applyEnvString(&cfg.HTTPPort, "HTTP_PORT")
	applyEnvString(&cfg.PostgresDSN, "POSTGRES_DSN")
	applyEnvString(&cfg.RedisAddr, "REDIS_ADDR")
	applyEnvString(&cfg.RedisPassword, "REDIS_PASSWORD")

	if err := applyEnvDuration(&cfg.StaleDraftMaxAge, "STALE_DRAFT_MAX_AGE"); err != nil {
		return Config{}, err
	}
	if err := applyEnvDuration(&cfg.WorkerPollInterval, "WORKER_POLL_INTERVAL"); err != nil {
		return Config{}, err
	}
	cfg.EnableStaleDraftCleanup = envBool("ENABLE_STALE_DRAFT_CLEANUP", cfg.EnableStaleDraftCleanup)

	return cfg, nil
}

func applyEnvString(target *string, name string) {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		*target = value
	}
}

func applyEnvDuration(target *time.Duration, name string) error {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*target = value
	return nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
