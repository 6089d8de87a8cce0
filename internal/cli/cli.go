// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for termfolio.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdRun
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdRun:
		return "run"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrUsage wraps every argument error so callers can print usage.
var ErrUsage = errors.New("usage error")

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath  string
	ContentPath string
	Plain       bool   // line-mode REPL instead of the TUI
	Theme       string // dark or light, overrides config and saved state
	Verbose     bool

	// Raw args (remaining after flag parsing and the command word)
	Raw []string
}

const usageText = `termfolio - a portfolio you can talk to in a terminal

Usage:
  termfolio [flags] [command]

Commands:
  tui                 Open the terminal window (default)
  run [line...]       Run command lines and print their output.
                      Without lines, reads them from stdin.
  config [show|path|reset]
                      Show, locate or reset the config file
  version             Show version information
  help                Show this help

Flags:
  --config PATH       Config file (default ~/.termfolio/config.toml)
  --content PATH      Content catalog (TOML) to serve
  --plain             Use a plain line prompt instead of the full window
  --theme dark|light  Start with this theme
  -v, --verbose       Debug logging

Examples:
  termfolio
  termfolio --theme light --content ./portfolio.toml
  termfolio run about "goto projects" whoami
  echo help | termfolio run

Environment:
  TERMFOLIO_CONTENT, TERMFOLIO_THEME, TERMFOLIO_PROMPT, TERMFOLIO_HISTORY_SIZE,
  TERMFOLIO_PLAIN, TERMFOLIO_DOWNLOAD_DIR, TERMFOLIO_LOG_LEVEL, TERMFOLIO_ENV

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("termfolio version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses os.Args.
func Parse() (Command, Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses command-line arguments and returns the command and args.
func ParseArgs(argv []string) (Command, Args, error) {
	remaining, args, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, args, err
	}

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, args, nil
	}

	cmd := strings.ToLower(remaining[0])
	args.Raw = remaining[1:]

	switch cmd {
	case "tui":
		return CmdTUI, args, nil
	case "run":
		return CmdRun, args, nil
	case "config":
		return CmdConfig, args, nil
	case "version", "--version":
		return CmdVersion, args, nil
	case "help", "-h", "--help":
		return CmdHelp, args, nil
	default:
		return CmdHelp, args, fmt.Errorf("%w: unknown command %q", ErrUsage, remaining[0])
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
// Flags are only recognised before the command word; everything after "run"
// is a command line for the interpreter.
func parseGlobalFlags(argv []string) ([]string, Args, error) {
	var args Args

	i := 0
	for ; i < len(argv); i++ {
		arg := argv[i]
		if !strings.HasPrefix(arg, "-") || arg == "-h" || arg == "--help" || arg == "--version" {
			break
		}

		name, value, hasValue := strings.Cut(arg, "=")
		takeValue := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(argv) {
				return "", fmt.Errorf("%w: %s needs a value", ErrUsage, name)
			}
			i++
			return argv[i], nil
		}

		var err error
		switch name {
		case "--config":
			args.ConfigPath, err = takeValue()
		case "--content":
			args.ContentPath, err = takeValue()
		case "--theme":
			args.Theme, err = takeValue()
			if err == nil {
				args.Theme = strings.ToLower(args.Theme)
				if args.Theme != "dark" && args.Theme != "light" {
					err = fmt.Errorf("%w: --theme must be dark or light, got %q", ErrUsage, args.Theme)
				}
			}
		case "--plain":
			args.Plain = true
		case "-v", "--verbose":
			args.Verbose = true
		default:
			err = fmt.Errorf("%w: unknown flag %q", ErrUsage, arg)
		}
		if err != nil {
			return nil, args, err
		}
	}

	return argv[i:], args, nil
}
