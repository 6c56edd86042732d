package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Environment overrides. Tokens rarely belong in config files, so the
// environment always wins over the TOML document.
const (
	EnvAPIToken = "STOREFRONT_API_TOKEN"
	EnvBaseURL  = "STOREFRONT_BASE_URL"
)

// Defaults applied before the file is read.
const (
	DefaultListen         = ":8080"
	DefaultIndex          = "product-catalog"
	DefaultTimeoutSeconds = 30
)

// Config is the full server configuration.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":8080".
	Listen string `toml:"listen"`

	// Retrieval configures the remote search index.
	Retrieval RetrievalConfig `toml:"retrieval"`
}

// RetrievalConfig configures the managed retrieval service.
type RetrievalConfig struct {
	// BaseURL is the account-scoped API root of the service.
	BaseURL string `toml:"base_url"`

	// APIToken is the bearer token. Usually left empty here and
	// supplied via STOREFRONT_API_TOKEN.
	APIToken string `toml:"api_token"`

	// Index names the pre-built document index to search.
	Index string `toml:"index"`

	// TimeoutSeconds bounds a single search request.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// DefaultPath returns the default config location,
// ~/.storefront-mcp/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".storefront-mcp", "config.toml"), nil
}

// Load reads configuration from the given TOML file, applies defaults
// and environment overrides, and validates the result. An empty path
// selects the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Listen: DefaultListen,
		Retrieval: RetrievalConfig{
			Index:          DefaultIndex,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No file is fine as long as the environment fills the gaps.
	default:
		return nil, err
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Retrieval.BaseURL = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		cfg.Retrieval.APIToken = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Retrieval.BaseURL == "" {
		return fmt.Errorf("config: retrieval base_url is required (or set %s)", EnvBaseURL)
	}
	if c.Retrieval.APIToken == "" {
		return fmt.Errorf("config: retrieval api_token is required (or set %s)", EnvAPIToken)
	}
	if c.Retrieval.Index == "" {
		return fmt.Errorf("config: retrieval index is required")
	}
	if c.Retrieval.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: retrieval timeout_seconds must be positive")
	}
	return nil
}
