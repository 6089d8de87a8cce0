// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for termfolio.
//
// Configuration file locations (in order of precedence):
//   - --config PATH
//   - ~/.termfolio/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/termfolio/internal/util"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "TERMFOLIO_"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete termfolio configuration.
type Config struct {
	Terminal TerminalConfig `toml:"terminal"`
	Content  ContentConfig  `toml:"content"`
	Theme    ThemeConfig    `toml:"theme"`
	Download DownloadConfig `toml:"download"`
	Log      LogConfig      `toml:"log"`
}

// TerminalConfig controls the interpreter and its hosts.
type TerminalConfig struct {
	// Prompt echoed before each command; empty derives it from the content identity
	Prompt string `toml:"prompt"`

	// HistorySize caps the number of remembered input lines
	HistorySize int `toml:"history_size"`

	// WelcomeDelayMillis delays the welcome banner in the TUI (0 prints immediately)
	WelcomeDelayMillis int `toml:"welcome_delay_ms"`

	// Plain forces the line-mode REPL even on a capable terminal
	Plain bool `toml:"plain"`
}

// ContentConfig locates the portfolio content.
type ContentConfig struct {
	// Path to a content TOML file; empty uses the built-in catalog
	Path string `toml:"path"`

	// Watch reloads the content file when it changes
	Watch bool `toml:"watch"`
}

// ThemeConfig controls the light/dark theme.
type ThemeConfig struct {
	// Default is "dark", "light" or "auto" (follow the terminal background)
	Default string `toml:"default"`

	// StatePath stores the last chosen theme; empty uses ~/.termfolio/theme.json
	StatePath string `toml:"state_path"`
}

// DownloadConfig controls the resume download.
type DownloadConfig struct {
	// Dir receives downloaded files; empty uses ~/Downloads
	Dir string `toml:"dir"`

	// MinIntervalSecs is the minimum time between two downloads
	MinIntervalSecs int `toml:"min_interval_secs"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `toml:"level"`

	// Mode is "dev" (console encoder) or "prod" (JSON encoder)
	Mode string `toml:"mode"`

	// Path of the rotated log file; empty uses ~/.termfolio/termfolio.log
	Path string `toml:"path"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terminal: TerminalConfig{
			Prompt:             "",
			HistorySize:        50,
			WelcomeDelayMillis: 2000, // matches the web page's delayed greeting
			Plain:              false,
		},

		Content: ContentConfig{
			Path:  "",
			Watch: true,
		},

		Theme: ThemeConfig{
			Default:   "dark",
			StatePath: "",
		},

		Download: DownloadConfig{
			Dir:             "",
			MinIntervalSecs: 5,
		},

		Log: LogConfig{
			Level: "info",
			Mode:  "prod",
			Path:  "",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the termfolio configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".termfolio"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ThemeStatePath returns the configured theme state file or its default.
func (c *Config) ThemeStatePath() (string, error) {
	if c.Theme.StatePath != "" {
		return expandHome(c.Theme.StatePath)
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme.json"), nil
}

// LogPath returns the configured log file or its default.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return expandHome(c.Log.Path)
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "termfolio.log"), nil
}

// DownloadDir returns the configured download directory or ~/Downloads.
func (c *Config) DownloadDir() (string, error) {
	if c.Download.Dir != "" {
		return expandHome(c.Download.Dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}

// ContentPath returns the content file with "~" expanded, or "".
func (c *Config) ContentPath() (string, error) {
	if c.Content.Path == "" {
		return "", nil
	}
	return expandHome(c.Content.Path)
}

// DownloadInterval returns the minimum time between downloads.
func (c *Config) DownloadInterval() time.Duration {
	return time.Duration(c.Download.MinIntervalSecs) * time.Second
}

// WelcomeDelay returns the delay before the welcome banner.
func (c *Config) WelcomeDelay() time.Duration {
	return time.Duration(c.Terminal.WelcomeDelayMillis) * time.Millisecond
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads ~/.termfolio/config.toml, falling back to defaults when it does
// not exist. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg and fills missing values.
func LoadTOML(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	// Terminal
	if cfg.Terminal.HistorySize == 0 {
		cfg.Terminal.HistorySize = defaults.Terminal.HistorySize
	}

	// Theme
	if cfg.Theme.Default == "" {
		cfg.Theme.Default = defaults.Theme.Default
	}

	// Download
	if cfg.Download.MinIntervalSecs == 0 {
		cfg.Download.MinIntervalSecs = defaults.Download.MinIntervalSecs
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Mode == "" {
		cfg.Log.Mode = defaults.Log.Mode
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to a TOML file atomically.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# termfolio configuration file")
	fmt.Fprintln(&buf, "# Generated by termfolio - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Terminal
	if c.Terminal.HistorySize < 1 || c.Terminal.HistorySize > 1000 {
		errs = append(errs, ValidationError{
			Field:   "terminal.history_size",
			Message: fmt.Sprintf("must be between 1 and 1000, got %d", c.Terminal.HistorySize),
		})
	}
	if c.Terminal.WelcomeDelayMillis < 0 {
		errs = append(errs, ValidationError{
			Field:   "terminal.welcome_delay_ms",
			Message: "must not be negative",
		})
	}
	if strings.ContainsAny(c.Terminal.Prompt, "\r\n") {
		errs = append(errs, ValidationError{
			Field:   "terminal.prompt",
			Message: "must be a single line",
		})
	}

	// Theme
	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.Theme.Default)] {
		errs = append(errs, ValidationError{
			Field:   "theme.default",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.Theme.Default),
		})
	}

	// Download
	if c.Download.MinIntervalSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "download.min_interval_secs",
			Message: "must not be negative",
		})
	}

	// Log
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}
	validModes := map[string]bool{"dev": true, "prod": true}
	if !validModes[strings.ToLower(c.Log.Mode)] {
		errs = append(errs, ValidationError{
			Field:   "log.mode",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: dev, prod", c.Log.Mode),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported variables:
//   - TERMFOLIO_CONTENT: overrides content.path
//   - TERMFOLIO_THEME: overrides theme.default
//   - TERMFOLIO_PROMPT: overrides terminal.prompt
//   - TERMFOLIO_HISTORY_SIZE: overrides terminal.history_size
//   - TERMFOLIO_PLAIN: overrides terminal.plain
//   - TERMFOLIO_DOWNLOAD_DIR: overrides download.dir
//   - TERMFOLIO_LOG_LEVEL: overrides log.level
//   - TERMFOLIO_ENV: overrides log.mode ("dev" or "prod")
func (c *Config) ApplyEnvOverrides() {
	if path := os.Getenv(EnvPrefix + "CONTENT"); path != "" {
		c.Content.Path = path
	}

	if theme := os.Getenv(EnvPrefix + "THEME"); theme != "" {
		c.Theme.Default = strings.ToLower(theme)
	}

	if prompt := os.Getenv(EnvPrefix + "PROMPT"); prompt != "" {
		c.Terminal.Prompt = prompt
	}

	if size := os.Getenv(EnvPrefix + "HISTORY_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.Terminal.HistorySize = n
		}
	}

	if plain := os.Getenv(EnvPrefix + "PLAIN"); plain != "" {
		c.Terminal.Plain = plain == "1" || strings.ToLower(plain) == "true"
	}

	if dir := os.Getenv(EnvPrefix + "DOWNLOAD_DIR"); dir != "" {
		c.Download.Dir = dir
	}

	if level := os.Getenv(EnvPrefix + "LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}

	if mode := os.Getenv(EnvPrefix + "ENV"); mode != "" {
		c.Log.Mode = strings.ToLower(mode)
	}
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return buf.String()
}
