// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
//
// The interpreter turns one line of typed text into zero or more output
// lines. It owns a sealed registry of commands, a bounded history buffer and
// an append-only output log. Everything outside of text generation (theme
// switching, navigation, downloads, rendering) is requested from
// collaborators passed in through a Context.
//
// # Key Types
//
//   - Registry: Sealed, case-insensitive table of command descriptors
//   - Command: Name, description, argument definitions and a typed Handler
//   - Result: Text to render plus an optional Effect for a collaborator
//   - History: Most-recent-first input history with a browsing cursor
//   - OutputLog: Append-only log of kind-tagged output lines
//   - Interpreter: Submit, history browsing and tab completion
//
// # Built-in Commands
//
//   - help, clear, echo, whoami, pwd, date, ls
//   - theme: Toggle light/dark theme
//   - open, goto: Navigate to pages, sections and external profiles
//   - about, skills, experience, education, projects, blog, contact, resume
//
// # Usage
//
// Build an interpreter and feed it key events:
//
//	reg := commands.NewDefaultRegistry()
//	interp := commands.New(reg, &commands.Context{Theme: themeMgr})
//	interp.Submit("echo hello world")
//
//	if line, ok := interp.HistoryPrevious(); ok {
//	    input.SetValue(line)
//	}
//
//	if text, ok := interp.Complete("pw"); ok {
//	    input.SetValue(text) // "pwd"
//	}
package commands
