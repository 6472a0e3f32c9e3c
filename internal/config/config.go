package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config carries everything the server needs at startup. Every field has a
// working default so a missing config file is not an error; environment
// variables override the file for the handful of values that change between
// deployments.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Time         TimeConfig         `yaml:"time"`
	TextProvider TextProviderConfig `yaml:"text_provider"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	SecretKey    string `yaml:"secret_key"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

type TimeConfig struct {
	Zone string `yaml:"zone"`
}

type TextProviderConfig struct {
	Enabled   bool                 `yaml:"enabled"`
	Endpoints []TextEndpointConfig `yaml:"endpoints"`
}

type TextEndpointConfig struct {
	URL      string `yaml:"url"`
	Provider string `yaml:"provider"`
}

func defaults() Config {
	return Config{
		Server:       ServerConfig{Port: "8080"},
		Database:     DatabaseConfig{Path: filepath.Join("data", "stride.db")},
		Auth:         AuthConfig{SecretKey: "change_me_in_production"},
		Time:         TimeConfig{Zone: "UTC"},
		TextProvider: TextProviderConfig{Enabled: true},
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if value := os.Getenv("PORT"); value != "" {
		cfg.Server.Port = value
	}
	if value := os.Getenv("STRIDE_DB_PATH"); value != "" {
		cfg.Database.Path = value
	}
	if value := os.Getenv("SECRET_KEY"); value != "" {
		cfg.Auth.SecretKey = value
	}
	if value := os.Getenv("TZ"); value != "" {
		cfg.Time.Zone = value
	}
}
