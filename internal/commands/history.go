// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
package commands

// DefaultHistorySize is the number of input lines kept for browsing.
const DefaultHistorySize = 50

// History is the bounded record of submitted lines, most recent first.
// The cursor is -1 while the user is not browsing.
type History struct {
	entries []string
	max     int
	index   int
}

// NewHistory creates a history buffer holding at most max entries.
// A non-positive max falls back to DefaultHistorySize.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{
		entries: make([]string, 0, max),
		max:     max,
		index:   -1,
	}
}

// Push records a line at the front, evicting the oldest entry on overflow,
// and leaves browsing mode.
func (h *History) Push(line string) {
	h.entries = append(h.entries, "")
	copy(h.entries[1:], h.entries)
	h.entries[0] = line
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
	h.index = -1
}

// Previous moves one step older.
// Returns the entry to show and true, or false when already at the oldest entry.
func (h *History) Previous() (string, bool) {
	if h.index >= len(h.entries)-1 {
		return "", false
	}
	h.index++
	return h.entries[h.index], true
}

// Next moves one step newer.
// Stepping past the newest entry returns ("", true) so the input field is
// cleared. When not browsing it returns false and changes nothing.
func (h *History) Next() (string, bool) {
	switch {
	case h.index > 0:
		h.index--
		return h.entries[h.index], true
	case h.index == 0:
		h.index = -1
		return "", true
	default:
		return "", false
	}
}

// Index returns the browsing cursor (-1 when not browsing).
func (h *History) Index() int {
	return h.index
}

// Entries returns a copy of the entries, most recent first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
