// Package config loads and stores the CLI's user-scoped settings: a JSON
// (or YAML) file under the home directory, overridden by environment
// variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	dirName  = ".forwardemail"
	fileName = "config.json"
)

// Config holds the persisted CLI settings.
type Config struct {
	APIKey      string   `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	BaseURL     string   `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
	DefaultFrom string   `json:"defaultFrom,omitempty" yaml:"defaultFrom,omitempty"`
	Timeout     Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Duration is a time.Duration stored as a string such as "30s".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// DefaultPath returns $FORWARD_EMAIL_CONFIG, or ~/.forwardemail/config.json.
func DefaultPath() (string, error) {
	if v := os.Getenv("FORWARD_EMAIL_CONFIG"); v != "" {
		return v, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}

	return filepath.Join(home, dirName, fileName), nil
}

// Load reads the config file at path. A missing file yields an empty
// configuration; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory. The file is
// readable by the owner only since it holds the API key.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides values with environment variables. Only non-empty
// variables override existing values; an unparsable timeout is ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("FORWARD_EMAIL_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("FORWARD_EMAIL_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("FORWARD_EMAIL_FROM"); v != "" {
		c.DefaultFrom = v
	}
	if v := os.Getenv("FORWARD_EMAIL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = Duration(d)
		}
	}
}

// LoadDotEnv loads environment variables from the given .env files, or
// ./.env when none are given. Missing files are skipped and variables that
// are already set are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}

	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
