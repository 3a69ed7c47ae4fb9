// Package config provides configuration management for the photo-album CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"photo-album-cli/src/photos"
)

// EnvPrefix is prepended to every environment variable, e.g. PHOTOALBUM_BASE_URL.
const EnvPrefix = "PHOTOALBUM"

const (
	KeyBaseURL     = "base_url"
	KeyHTTPTimeout = "http_timeout"
	KeyOutput      = "output"
	KeyLogLevel    = "log_level"
)

// OutputMode selects how listings are printed.
type OutputMode string

const (
	OutputTable       OutputMode = "table"
	OutputJSON        OutputMode = "json"
	OutputInteractive OutputMode = "tui"
)

// ParseOutputMode validates a mode name (case-insensitive).
func ParseOutputMode(name string) (OutputMode, error) {
	switch mode := OutputMode(strings.ToLower(strings.TrimSpace(name))); mode {
	case OutputTable, OutputJSON, OutputInteractive:
		return mode, nil
	}
	return "", fmt.Errorf("unsupported output mode %q (want table, json or tui)", name)
}

// Config holds the application configuration.
type Config struct {
	// BaseURL is the root of the photo-album API.
	BaseURL string
	// HTTPTimeout bounds each request; zero keeps the http.Client default.
	HTTPTimeout time.Duration
	// Output selects table, JSON or interactive listings.
	Output OutputMode
	// LogLevel enables diagnostics on stderr when set.
	LogLevel string
}

// LoadFromEnv loads configuration from PHOTOALBUM_* environment variables.
func LoadFromEnv() (*Config, error) {
	vp := viper.New()
	vp.SetEnvPrefix(EnvPrefix)
	vp.AutomaticEnv()
	return load(vp)
}

func load(vp *viper.Viper) (*Config, error) {
	vp.SetDefault(KeyBaseURL, photos.DefaultBaseURL)
	vp.SetDefault(KeyHTTPTimeout, "0s")
	vp.SetDefault(KeyOutput, string(OutputTable))
	vp.SetDefault(KeyLogLevel, "")

	timeout, err := time.ParseDuration(vp.GetString(KeyHTTPTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid %s_%s: %w", EnvPrefix, strings.ToUpper(KeyHTTPTimeout), err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid %s_%s: must not be negative", EnvPrefix, strings.ToUpper(KeyHTTPTimeout))
	}

	output, err := ParseOutputMode(vp.GetString(KeyOutput))
	if err != nil {
		return nil, fmt.Errorf("invalid %s_%s: %w", EnvPrefix, strings.ToUpper(KeyOutput), err)
	}

	baseURL := strings.TrimSpace(vp.GetString(KeyBaseURL))
	if baseURL == "" {
		baseURL = photos.DefaultBaseURL
	}

	return &Config{
		BaseURL:     baseURL,
		HTTPTimeout: timeout,
		Output:      output,
		LogLevel:    vp.GetString(KeyLogLevel),
	}, nil
}

// MustLoadFromEnv loads configuration from environment variables and panics on error.
func MustLoadFromEnv() *Config {
	cfg, err := LoadFromEnv()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
