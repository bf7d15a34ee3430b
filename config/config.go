// Package config loads the optional settings file for the API test runner.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"sigs.k8s.io/yaml"
)

const (
	// DefaultBaseURL is where the backend listens in local development.
	DefaultBaseURL  = "http://localhost:8001"
	DefaultUsername = "admin"
	DefaultPassword = "admin123"

	// BaseURLEnvVar, if set, replaces DefaultBaseURL.
	BaseURLEnvVar = "NEFF_API_URL"
)

// ErrInvalidTimeout indicates that the timeout setting is not a valid duration.
var ErrInvalidTimeout = errors.New("invalid timeout")

// Config holds the runner settings. Empty fields mean "not set".
type Config struct {
	BaseURL  string `json:"base_url,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	// Timeout is a Go duration string such as "10s". Empty or "0" means no client timeout.
	Timeout string `json:"timeout,omitempty"`
}

// Default returns the settings used when neither a file nor flags say otherwise.
func Default() Config {
	baseURL := os.Getenv(BaseURLEnvVar)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		BaseURL:  baseURL,
		Username: DefaultUsername,
		Password: DefaultPassword,
	}
}

// Load reads a YAML settings file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if _, err := cfg.TimeoutDuration(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Merge returns c with every empty field filled in from fallback.
func (c Config) Merge(fallback Config) Config {
	if c.BaseURL == "" {
		c.BaseURL = fallback.BaseURL
	}
	if c.Username == "" {
		c.Username = fallback.Username
	}
	if c.Password == "" {
		c.Password = fallback.Password
	}
	if c.Timeout == "" {
		c.Timeout = fallback.Timeout
	}
	return c
}

// TimeoutDuration parses Timeout. An empty value is zero.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w %q", ErrInvalidTimeout, c.Timeout)
	}
	return d, nil
}
