// Package config loads service configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoAPIKey means no Gemini credential was found in the config file or
// the environment. Fatal before serving.
var ErrNoAPIKey = errors.New("config: no API key found (set GEMINI_API_KEY)")

// Config holds all aaalens configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	LLM    LLMConfig    `yaml:"llm"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LLMConfig configures the analysis oracle backend.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"` // Go duration string, e.g. "2m"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8000,
		},
		LLM: LLMConfig{
			Model:   "gemini-3-flash-preview",
			Timeout: "2m",
		},
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Missing file is fine; env vars may carry everything.
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the loaded values.
// Credential resolution order: explicit config > GEMINI_API_KEY >
// GOOGLE_API_KEY.
func (c *Config) applyEnv() {
	if c.LLM.APIKey == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			c.LLM.APIKey = key
		} else if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
			c.LLM.APIKey = key
		}
	}
	if model := os.Getenv("AAALENS_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if host := os.Getenv("AAALENS_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("AAALENS_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			c.Server.Port = n
		}
	}
}

// Validate checks that the process can start at all.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return ErrNoAPIKey
	}
	if _, err := c.OracleTimeout(); err != nil {
		return err
	}
	return nil
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// OracleTimeout parses the configured oracle timeout.
func (c *Config) OracleTimeout() (time.Duration, error) {
	if c.LLM.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: invalid llm timeout %q: %w", c.LLM.Timeout, err)
	}
	return d, nil
}
