// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the line-mode hosts for
// termfolio.
//
// # Key Types
//
//   - Command: Enumeration of the top-level commands (tui, run, version, help)
//   - Args: Parsed global flags and the remaining arguments
//   - REPL: liner-based interactive host for terminals without a full TUI
//
// # Usage
//
//	cmd, args, err := cli.Parse()
//	switch cmd {
//	case cli.CmdRun:
//	    errs := cli.RunLines(in, lines, os.Stdout)
//	case cli.CmdTUI:
//	    // start the Bubble Tea program, or a REPL when args.Plain
//	}
//
// # Terminal Handling
//
// Colors are disabled when stdout is not a terminal or NO_COLOR is set.
// Run mode reads stdin line by line when no lines are given on the command
// line and stdin is not a terminal.
package cli
