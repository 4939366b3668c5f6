package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Listing struct {
		PerPage int `yaml:"per_page"`
	} `yaml:"listing"`
	Auth struct {
		TokenTTL string `yaml:"token_ttl"`
	} `yaml:"auth"`

	tokenTTL time.Duration
}

// TokenTTL returns the parsed auth token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return c.tokenTTL
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Listing.PerPage <= 0 {
		config.Listing.PerPage = 12
	}
	config.tokenTTL = 24 * time.Hour
	if config.Auth.TokenTTL != "" {
		ttl, err := time.ParseDuration(config.Auth.TokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse auth token_ttl: %w", err)
		}
		config.tokenTTL = ttl
	}
	return &config, nil
}
