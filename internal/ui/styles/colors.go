// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the termfolio TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS (Catppuccin Latte/Mocha)
// =============================================================================

// Green is the prompt and success accent.
var Green = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}

// Cyan is the brand accent used for the header and links.
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Purple highlights headings in page panes.
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Rose marks errors.
var Rose = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}

// Amber marks notices such as download results.
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface is the terminal window background.
var Surface = lipgloss.AdaptiveColor{Light: "#EFF1F5", Dark: "#1E1E2E"}

// SurfaceDim is used for the title bar and status bar.
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#E6E9EF", Dark: "#181825"}

// Overlay draws borders.
var Overlay = lipgloss.AdaptiveColor{Light: "#CCD0DA", Dark: "#45475A"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary is used for command responses.
var TextPrimary = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"}

// TextSecondary is used for the echoed command text.
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6C6F85", Dark: "#A6ADC8"}

// TextMuted is used for hints.
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"}

// =============================================================================
// WINDOW CHROME
// =============================================================================

// Traffic-light dots in the title bar.
var (
	DotClose    = lipgloss.Color("#FF5F56")
	DotMinimize = lipgloss.Color("#FFBD2E")
	DotMaximize = lipgloss.Color("#27C93F")
)
