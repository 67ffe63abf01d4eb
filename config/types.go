package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	VoteSmart   VoteSmartConfig   `mapstructure:"votesmart"`
	Output      OutputConfig      `mapstructure:"output"`
	Filter      FilterConfig      `mapstructure:"filter"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// VoteSmartConfig holds Vote Smart API connection details
type VoteSmartConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// FilterConfig contains named filter expressions.
// Preset names are case-insensitive; viper lowercases them.
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// ConcurrencyConfig limits parallel API calls for batch commands
type ConcurrencyConfig struct {
	Limit int `mapstructure:"limit"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
