package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/envokit/envokit/packages/auth"
)

// Config mirrors the client's documented option set plus the auth block.
type Config struct {
	BaseURL        string            `yaml:"baseURL,omitempty"`
	TimeoutSeconds int               `yaml:"timeoutSeconds,omitempty"`
	Headers        map[string]string `yaml:"headers,omitempty"`
	Auth           *AuthConfig       `yaml:"auth,omitempty"`
	RequestID      *bool             `yaml:"requestID,omitempty"`
	NoColor        *bool             `yaml:"noColor,omitempty"`
}

// AuthConfig describes the credential scheme in the config file.
type AuthConfig struct {
	Type     string `yaml:"type"` // basic, bearer, apikey
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	Token    string `yaml:"token,omitempty"`
	Header   string `yaml:"header,omitempty"`
	Key      string `yaml:"key,omitempty"`
}

// Filenames contains the config file names searched in order.
var Filenames = []string{
	".envokit.yml",
	".envokit.yaml",
	"envokit.yml",
	"envokit.yaml",
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		TimeoutSeconds: 60,
	}
}

// Load reads configuration from path, or searches the current directory
// when path is empty. A missing config file yields the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}
	return FindAndLoad(".")
}

// FindAndLoad searches dir for a known config file name.
func FindAndLoad(dir string) (*Config, error) {
	for _, name := range Filenames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return loadFile(path)
		}
	}
	return Default(), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge merges other into c, with other taking precedence where set.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c

	if other.BaseURL != "" {
		result.BaseURL = other.BaseURL
	}
	if other.TimeoutSeconds > 0 {
		result.TimeoutSeconds = other.TimeoutSeconds
	}
	if other.Auth != nil {
		result.Auth = other.Auth
	}
	if other.RequestID != nil {
		result.RequestID = other.RequestID
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	if len(other.Headers) > 0 {
		merged := make(map[string]string, len(c.Headers)+len(other.Headers))
		for k, v := range c.Headers {
			merged[k] = v
		}
		for k, v := range other.Headers {
			merged[k] = v
		}
		result.Headers = merged
	}

	return &result
}

// Provider maps the auth block to a header-construction policy. Returns
// nil when no auth is configured.
func (c *Config) Provider() (auth.Provider, error) {
	if c.Auth == nil {
		return nil, nil
	}
	switch c.Auth.Type {
	case "basic":
		return auth.Basic{Username: c.Auth.Username, Password: c.Auth.Password}, nil
	case "bearer":
		return auth.Bearer{Token: c.Auth.Token}, nil
	case "apikey":
		return auth.APIKey{Header: c.Auth.Header, Key: c.Auth.Key}, nil
	default:
		return nil, fmt.Errorf("unknown auth type %q", c.Auth.Type)
	}
}

// GetRequestID returns the request ID setting, defaulting to false.
func (c *Config) GetRequestID() bool {
	return c.RequestID != nil && *c.RequestID
}

// GetNoColor returns the no color setting, defaulting to false.
func (c *Config) GetNoColor() bool {
	return c.NoColor != nil && *c.NoColor
}
