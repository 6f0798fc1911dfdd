package assistant

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultModels is the built-in candidate list, most preferred first.
// Newer-capability models come before older ones; the orchestrator walks
// the list in this exact order.
func DefaultModels() []string {
	return []string{
		"gemini-2.0-flash",
		"gemini-2.0-flash-lite",
		"gemini-1.5-flash",
		"gemini-1.5-pro",
	}
}

// Config is the runtime configuration for the assistant.
type Config struct {
	Gemini         GeminiConfig `yaml:"gemini"`
	Models         []string     `yaml:"models"`
	AttemptTimeout string       `yaml:"attempt_timeout"` // Per-attempt deadline as a duration string (e.g. "30s"); empty means none.
	CatalogFile    string       `yaml:"catalog_file"`    // Optional path to a catalog YAML; empty uses the built-in snapshot.
}

// GeminiConfig holds the generation API settings.
type GeminiConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
}

// LoadConfig reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR in the YAML are expanded before parsing.
// This allows the API key to be kept in the environment (e.g. loaded from
// a .env file) rather than committed in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("assistant: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("assistant: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("assistant: config: gemini api_key is required")
	}

	if len(c.Models) == 0 {
		return fmt.Errorf("assistant: config: at least one model is required")
	}

	seen := make(map[string]struct{}, len(c.Models))
	for _, m := range c.Models {
		if m == "" {
			return fmt.Errorf("assistant: config: model name must not be empty")
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("assistant: config: duplicate model %q", m)
		}
		seen[m] = struct{}{}
	}

	if _, err := c.ParseAttemptTimeout(); err != nil {
		return err
	}

	return nil
}

// ParseAttemptTimeout parses the attempt_timeout field. An empty field
// yields zero, meaning no per-attempt deadline.
func (c Config) ParseAttemptTimeout() (time.Duration, error) {
	if c.AttemptTimeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.AttemptTimeout)
	if err != nil {
		return 0, fmt.Errorf("assistant: config: invalid attempt_timeout %q: %w", c.AttemptTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("assistant: config: attempt_timeout must not be negative")
	}

	return d, nil
}
