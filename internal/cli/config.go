// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation for termfolio.
//
// Command: config [subcommand]
// Short:   View or reset the configuration file
//
// Subcommands:
//   show (default)      Display the effective configuration
//   path                Show configuration file path
//   reset               Write the default configuration
//
// Examples:
//   termfolio config
//   termfolio --config ./termfolio.toml config reset
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/termfolio/internal/config"
)

// LoadConfig loads the config file at path, or the default location when
// path is empty. Environment overrides are applied either way.
func LoadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// HandleConfig handles "termfolio config [show|path|reset]".
func HandleConfig(args Args, out io.Writer) error {
	sub := "show"
	if len(args.Raw) > 0 {
		sub = strings.ToLower(args.Raw[0])
	}

	switch sub {
	case "show":
		cfg, err := LoadConfig(args.ConfigPath)
		if err != nil {
			return err
		}
		fmt.Fprint(out, cfg.String())
		return nil

	case "path":
		path, err := configFilePath(args.ConfigPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
		return nil

	case "reset":
		return handleConfigReset(args.ConfigPath, out)

	default:
		return fmt.Errorf("%w: unknown config subcommand %q (use show, path or reset)", ErrUsage, sub)
	}
}

func handleConfigReset(path string, out io.Writer) error {
	var err error
	if path != "" {
		err = config.SaveTOML(config.Default(), path)
	} else {
		err = config.Save(config.Default())
	}
	if err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}

	if path, err = configFilePath(path); err != nil {
		return err
	}
	fmt.Fprintln(out, "Configuration reset to defaults:", path)
	return nil
}

func configFilePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return config.ConfigPath()
}
