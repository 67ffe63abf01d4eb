package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides
const EnvPrefix = "VOTESMART"

// Load loads the configuration from file and environment.
// A missing config file is fine when configPath is empty; the API key can
// come from VOTESMART_API_KEY alone.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".votesmart"))
		}

		// Check /etc
		v.AddConfigPath("/etc/votesmart/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv loads variables from a .env file without overriding ones
// already set in the environment
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// bindEnv maps VOTESMART_* variables onto config keys.
// votesmart.api_key binds to VOTESMART_API_KEY rather than the doubled prefix.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("votesmart.api_key", EnvPrefix+"_API_KEY")
	_ = v.BindEnv("votesmart.base_url", EnvPrefix+"_BASE_URL")
	_ = v.BindEnv("votesmart.timeout", EnvPrefix+"_TIMEOUT")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Vote Smart defaults
	v.SetDefault("votesmart.base_url", "http://api.votesmart.org")
	v.SetDefault("votesmart.timeout", 30*time.Second)

	// Output defaults
	v.SetDefault("output.format", "table")

	// Batch defaults
	v.SetDefault("concurrency.limit", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.VoteSmart.BaseURL)
	if err != nil || cfg.VoteSmart.BaseURL == "" {
		return fmt.Errorf("votesmart.base_url must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("votesmart.base_url must use http or https: %s", cfg.VoteSmart.BaseURL)
	}

	if cfg.VoteSmart.Timeout <= 0 {
		return fmt.Errorf("votesmart.timeout must be positive")
	}

	if cfg.VoteSmart.APIKey == "your-api-key-here" {
		return fmt.Errorf("votesmart.api_key must be set to a valid API key")
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	if cfg.Concurrency.Limit < 1 {
		return fmt.Errorf("concurrency.limit must be at least 1")
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
