// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
package commands

// =============================================================================
// OUTPUT LINE
// =============================================================================

// LineKind tags an output line for styling.
type LineKind int

const (
	KindCommand  LineKind = iota // Echo of a submitted line, prefixed with the prompt
	KindResponse                 // Normal command output
	KindError                    // Unknown command or bad argument
	KindSuccess                  // Host notices such as the welcome banner
)

// String returns the style tag for the kind.
func (k LineKind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindResponse:
		return "response"
	case KindError:
		return "error"
	case KindSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// OutputLine is one rendered entry of the output log.
type OutputLine struct {
	Text string
	Kind LineKind
}

// =============================================================================
// OUTPUT LOG
// =============================================================================

// OutputLog is the append-only sequence of output lines.
// Lines are never reordered; the only removal is Clear.
type OutputLog struct {
	lines   []OutputLine
	visible bool
}

// Append adds a line and marks the log visible.
func (o *OutputLog) Append(kind LineKind, text string) {
	o.lines = append(o.lines, OutputLine{Text: text, Kind: kind})
	o.visible = true
}

// Clear empties the log and hides it.
func (o *OutputLog) Clear() {
	o.lines = nil
	o.visible = false
}

// Len returns the number of lines.
func (o *OutputLog) Len() int {
	return len(o.lines)
}

// Visible reports whether the output surface should be shown.
func (o *OutputLog) Visible() bool {
	return o.visible
}

// Lines returns a copy of all lines in order.
func (o *OutputLog) Lines() []OutputLine {
	out := make([]OutputLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// Since returns a copy of the lines starting at index from.
// An out-of-range index (for instance after a clear) returns every line.
func (o *OutputLog) Since(from int) []OutputLine {
	if from < 0 || from > len(o.lines) {
		from = 0
	}
	out := make([]OutputLine, len(o.lines)-from)
	copy(out, o.lines[from:])
	return out
}
