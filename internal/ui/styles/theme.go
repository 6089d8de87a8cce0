// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/commands"
)

// Theme holds all the styled components for the terminal window.
// Colors are adaptive: call lipgloss.SetHasDarkBackground before NewTheme
// and rebuild the theme after a switch.
type Theme struct {
	IsDark bool

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// WINDOW
	// ==========================================================================

	Window   lipgloss.Style
	TitleBar lipgloss.Style
	Title    lipgloss.Style

	// ==========================================================================
	// OUTPUT LINES
	// ==========================================================================

	Prompt       lipgloss.Style
	CommandLine  lipgloss.Style
	ResponseLine lipgloss.Style
	ErrorLine    lipgloss.Style
	SuccessLine  lipgloss.Style
	NoticeLine   lipgloss.Style
	Hint         lipgloss.Style

	// ==========================================================================
	// PAGE PANE AND STATUS BAR
	// ==========================================================================

	Page       lipgloss.Style
	PageTitle  lipgloss.Style
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusDesc lipgloss.Style
}

// NewTheme creates a theme for the current lipgloss background setting.
func NewTheme() *Theme {
	t := &Theme{IsDark: lipgloss.HasDarkBackground()}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.Window = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)

	t.TitleBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim)

	t.Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Green)

	t.CommandLine = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ResponseLine = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ErrorLine = lipgloss.NewStyle().
		Foreground(Rose)

	t.SuccessLine = lipgloss.NewStyle().
		Bold(true).
		Foreground(Green)

	t.NoticeLine = lipgloss.NewStyle().
		Italic(true).
		Foreground(Amber)

	t.Hint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Page = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Overlay).
		PaddingLeft(1)

	t.PageTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextMuted).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().
		Bold(true).
		Background(SurfaceDim).
		Foreground(Cyan)

	t.StatusDesc = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextMuted)
}

// Line returns the style for an output line kind.
func (t *Theme) Line(kind commands.LineKind) lipgloss.Style {
	switch kind {
	case commands.KindCommand:
		return t.CommandLine
	case commands.KindError:
		return t.ErrorLine
	case commands.KindSuccess:
		return t.SuccessLine
	default:
		return t.ResponseLine
	}
}

// RenderLine renders one output line. Command echoes get the prompt styled
// separately from the typed text.
func (t *Theme) RenderLine(line commands.OutputLine, prompt string) string {
	if line.Kind == commands.KindCommand && prompt != "" && strings.HasPrefix(line.Text, prompt) {
		return t.Prompt.Render(prompt) + t.CommandLine.Render(strings.TrimPrefix(line.Text, prompt))
	}
	return t.Line(line.Kind).Render(line.Text)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns, no page pane
	LayoutMedium                   // 60-100 columns, page pane below output
	LayoutWide                     // >= 100 columns, page pane beside output
)
