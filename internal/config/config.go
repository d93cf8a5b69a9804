package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Seed   SeedConfig   `yaml:"seed"`
	Events EventsConfig `yaml:"events"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// SeedConfig controls loading the bundled example projects at startup.
type SeedConfig struct {
	Enabled bool `yaml:"enabled"`
}

// EventsConfig tunes change-notification streaming to remote observers.
type EventsConfig struct {
	Buffer int `yaml:"buffer"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Log: LogConfig{
			Level: "info",
		},
		Seed: SeedConfig{
			Enabled: true,
		},
		Events: EventsConfig{
			Buffer: 64,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
// An explicit path takes precedence over FLICK_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("FLICK_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("FLICK_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("FLICK_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FLICK_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if level := os.Getenv("FLICK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if seed := os.Getenv("FLICK_SEED"); seed != "" {
		enabled, err := strconv.ParseBool(seed)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FLICK_SEED: %w", err)
		}
		cfg.Seed.Enabled = enabled
	}
	if bufStr := os.Getenv("FLICK_EVENTS_BUFFER"); bufStr != "" {
		buf, err := strconv.Atoi(bufStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FLICK_EVENTS_BUFFER: %w", err)
		}
		cfg.Events.Buffer = buf
	}

	if cfg.Events.Buffer < 1 {
		return Config{}, fmt.Errorf("events buffer must be positive, got %d", cfg.Events.Buffer)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
