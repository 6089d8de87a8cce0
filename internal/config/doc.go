// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for termfolio.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - TerminalConfig: Prompt, history size and welcome banner timing
//   - ContentConfig: Location of the portfolio content file
//   - ThemeConfig: Default theme and the persisted theme state
//   - DownloadConfig: Resume download directory and rate limit
//   - LogConfig: Log level, encoder mode and log file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (TERMFOLIO_*)
//   - --config PATH or ~/.termfolio/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	size := cfg.Terminal.HistorySize
package config
