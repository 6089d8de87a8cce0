// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/commands"
)

func TestNewTheme_FollowsBackground(t *testing.T) {
	lipgloss.SetHasDarkBackground(false)
	if NewTheme().IsDark {
		t.Error("theme should be light after SetHasDarkBackground(false)")
	}

	lipgloss.SetHasDarkBackground(true)
	if !NewTheme().IsDark {
		t.Error("theme should be dark after SetHasDarkBackground(true)")
	}
}

func TestTheme_Line(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		kind commands.LineKind
		want lipgloss.Style
	}{
		{commands.KindCommand, theme.CommandLine},
		{commands.KindResponse, theme.ResponseLine},
		{commands.KindError, theme.ErrorLine},
		{commands.KindSuccess, theme.SuccessLine},
	}

	for _, tc := range tests {
		got := theme.Line(tc.kind).Render("x")
		want := tc.want.Render("x")
		if got != want {
			t.Errorf("Line(%s) renders %q, want %q", tc.kind, got, want)
		}
	}
}

func TestTheme_RenderLine(t *testing.T) {
	theme := NewTheme()
	prompt := "visitor@portfolio:~$"

	echo := theme.RenderLine(commands.OutputLine{Text: prompt + " help", Kind: commands.KindCommand}, prompt)
	if !strings.Contains(echo, "help") || !strings.Contains(echo, "visitor@portfolio") {
		t.Errorf("RenderLine echo lost text: %q", echo)
	}

	plain := theme.RenderLine(commands.OutputLine{Text: "hello", Kind: commands.KindResponse}, prompt)
	if !strings.Contains(plain, "hello") {
		t.Errorf("RenderLine response lost text: %q", plain)
	}

	short := theme.RenderLine(commands.OutputLine{Text: "h", Kind: commands.KindCommand}, prompt)
	if !strings.Contains(short, "h") {
		t.Errorf("RenderLine short echo lost text: %q", short)
	}
}

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	theme := NewTheme()
	for _, tc := range tests {
		theme.SetSize(tc.width, 40)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("width %d: GetLayoutMode() = %v, want %v", tc.width, got, tc.want)
		}
	}
}
