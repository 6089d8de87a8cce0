// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
package commands

import "strings"

// ParseResult contains the result of parsing one input line.
type ParseResult struct {
	// Empty is true if the line held nothing but whitespace
	Empty bool

	// CommandName is the first token as typed
	CommandName string

	// Args are the remaining tokens, order preserved
	Args []string

	// RawInput is the trimmed input line
	RawInput string
}

// Parse splits a line on whitespace into a command name and arguments.
// There is no quoting or escaping: every run of whitespace separates tokens.
func Parse(input string) ParseResult {
	trimmed := strings.TrimSpace(input)
	result := ParseResult{RawInput: trimmed}

	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		result.Empty = true
		return result
	}

	result.CommandName = fields[0]
	if len(fields) > 1 {
		result.Args = fields[1:]
	}
	return result
}
