// Package config defines game configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and the environment.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log lines (written to stderr).
	LogFormat string `koanf:"log_format"`

	// Seed makes dealing reproducible. Zero seeds from the clock.
	Seed uint64 `koanf:"seed"`

	// MetricsAddr enables the stats/metrics HTTP listener, e.g. ":9090".
	// Empty disables it.
	MetricsAddr string `koanf:"metrics_addr"`

	// Prompt is printed before each guess is read.
	Prompt string `koanf:"prompt"`

	// ShowHelp prints the notation help before the first hand.
	ShowHelp bool `koanf:"show_help"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Prompt:    "Your guess? ",
	}
}

// Validate reports configuration values the game cannot run with.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return wrapInvalid("log_format must be text or json, got %q", c.LogFormat)
	}
	if c.Prompt == "" {
		return wrapInvalid("prompt must not be empty")
	}
	return nil
}
