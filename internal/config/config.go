// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/cv-builder/internal/rendering"
)

// Config is the application configuration. Every field has a default, so an
// empty file is a valid configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Session SessionConfig `yaml:"session"`
	Render  RenderConfig  `yaml:"render"`
}

// AppConfig holds process-level settings.
type AppConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the listen address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SessionConfig controls in-memory editing sessions.
type SessionConfig struct {
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// RenderConfig selects the export engine and its defaults.
type RenderConfig struct {
	// Engine is "native" or "browser". Only native output is byte-identical
	// for identical input; browser output depends on the installed Chrome and
	// its timestamps are rewritten on a best-effort basis.
	Engine          string        `yaml:"engine"`
	DefaultTemplate string        `yaml:"default_template"`
	DefaultFormat   string        `yaml:"default_format"`
	Compress        bool          `yaml:"compress"`
	Browser         BrowserConfig `yaml:"browser"`
}

// BrowserConfig configures the headless Chrome engine.
type BrowserConfig struct {
	ChromePath string        `yaml:"chrome_path"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		App: AppConfig{
			LogLevel: slog.LevelInfo,
			HTTP:     HTTPConfig{Port: 8080},
		},
		Session: SessionConfig{
			IdleTimeout:     2 * time.Hour,
			CleanupInterval: 5 * time.Minute,
		},
		Render: RenderConfig{
			Engine:          rendering.EngineNative,
			DefaultTemplate: rendering.DefaultTemplate,
			DefaultFormat:   rendering.FormatLetter,
			Compress:        true,
			Browser:         BrowserConfig{Timeout: rendering.DefaultBrowserTimeout},
		},
	}
}

// LoadConfig reads a YAML file over the defaults. ${VAR} references are
// expanded from the environment before parsing.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.App.HTTP.Validate(); err != nil {
		return fmt.Errorf("app.http: %w", err)
	}
	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// Validate validates the session configuration.
func (c *SessionConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.IdleTimeout, validation.Required, validation.Min(time.Minute)),
		validation.Field(&c.CleanupInterval, validation.Required, validation.Min(time.Second)),
	)
}

// Validate validates the render configuration.
func (c *RenderConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Engine, validation.Required, validation.In(rendering.EngineNative, rendering.EngineBrowser)),
		validation.Field(&c.DefaultTemplate, validation.Required, validation.In(templateNames()...)),
		validation.Field(&c.DefaultFormat, validation.Required, validation.In(rendering.FormatLetter, rendering.FormatA4)),
		validation.Field(&c.Browser),
	)
}

// Validate validates the browser configuration.
func (c BrowserConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Timeout, validation.Min(time.Second)),
	)
}

func templateNames() []any {
	var names []any
	for _, t := range rendering.Templates() {
		names = append(names, t.Name)
	}
	return names
}
