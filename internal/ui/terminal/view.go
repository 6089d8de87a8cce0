// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// Fixed rows: title bar, input line and status bar.
const (
	titleBarHeight  = 1
	inputLineHeight = 1
	statusBarHeight = 1
	windowChrome    = 2 // rounded border, top+bottom and left+right
	pageChrome      = 2 // left rule and padding of the page pane
)

// =============================================================================
// LAYOUT
// =============================================================================

// layout sizes the viewports for the current window and layout mode.
func (m *Model) layout() {
	m.theme.SetSize(m.width, m.height)

	innerW := max(m.width-windowChrome, 1)
	innerH := max(m.height-windowChrome, 1)
	bodyH := max(innerH-titleBarHeight-inputLineHeight-statusBarHeight, 1)

	m.input.Width = max(innerW-lipgloss.Width(m.input.Prompt)-1, 1)
	m.help.Width = innerW

	switch {
	case !m.pagePaneShown():
		m.output.Width, m.output.Height = innerW, bodyH
		m.page.Width, m.page.Height = 0, 0

	case m.theme.GetLayoutMode() == styles.LayoutMedium:
		outH := (bodyH + 1) / 2
		m.output.Width, m.output.Height = innerW, outH
		m.page.Width, m.page.Height = max(innerW-pageChrome, 1), max(bodyH-outH, 1)

	default:
		outW := innerW * 55 / 100
		m.output.Width, m.output.Height = outW, bodyH
		m.page.Width, m.page.Height = max(innerW-outW-pageChrome, 1), bodyH
	}

	m.markdown.configure(m.markdown.style, m.page.Width)
	m.renderPage()
}

// pagePaneShown reports whether the page pane fits the layout.
func (m Model) pagePaneShown() bool {
	return m.pages != nil && m.theme.GetLayoutMode() != styles.LayoutNarrow
}

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the terminal window.
func (m Model) View() string {
	innerW := max(m.width-windowChrome, 1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(innerW),
		m.renderBody(),
		m.input.View(),
		m.renderStatusBar(innerW),
	)
	return m.theme.Window.Render(content)
}

// renderTitleBar renders the traffic-light dots and the centered title.
func (m Model) renderTitleBar(width int) string {
	bg := lipgloss.NewStyle().Background(styles.SurfaceDim)
	dots := lipgloss.NewStyle().Foreground(styles.DotClose).Background(styles.SurfaceDim).Render("●") +
		bg.Render(" ") +
		lipgloss.NewStyle().Foreground(styles.DotMinimize).Background(styles.SurfaceDim).Render("●") +
		bg.Render(" ") +
		lipgloss.NewStyle().Foreground(styles.DotMaximize).Background(styles.SurfaceDim).Render("●")

	// Title bar padding takes two columns
	avail := max(width-2-lipgloss.Width(dots)-1, 0)
	title := util.TruncateWidth(m.in.Context().Catalog().Whoami()+": ~", avail)
	centered := m.theme.Title.Width(avail).Align(lipgloss.Center).Render(title)

	return m.theme.TitleBar.Width(width).Render(dots + bg.Render(" ") + centered)
}

// renderBody renders the output area and, when it fits, the page pane.
func (m Model) renderBody() string {
	out := m.renderOutputArea()
	if !m.pagePaneShown() {
		return out
	}

	page := m.theme.Page.
		Width(m.page.Width + pageChrome).
		Height(m.page.Height).
		Render(m.page.View())

	if m.theme.GetLayoutMode() == styles.LayoutMedium {
		return lipgloss.JoinVertical(lipgloss.Left, out, page)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out, page)
}

// renderOutputArea renders the output viewport, or blank space while the
// output is hidden.
func (m Model) renderOutputArea() string {
	area := lipgloss.NewStyle().Width(m.output.Width).Height(m.output.Height)
	if !m.surface.visible {
		return area.Render("")
	}
	return area.Render(m.output.View())
}

// renderStatusBar renders key help on the left and page/theme on the right.
func (m Model) renderStatusBar(width int) string {
	var right []string
	if idx := m.in.HistoryIndex(); idx >= 0 {
		right = append(right, fmt.Sprintf("history %d/%d", idx+1, len(m.in.HistoryEntries())))
	}
	if m.pageName != "" {
		right = append(right, m.pageName)
	}
	right = append(right, m.themeName)
	info := m.theme.StatusDesc.Render(strings.Join(right, " · "))

	// Status bar padding takes two columns
	avail := max(width-2, 0)
	h := m.help
	h.Width = max(avail-lipgloss.Width(info)-1, 0)
	keys := h.View(m.keys)

	gap := max(avail-lipgloss.Width(keys)-lipgloss.Width(info), 1)
	line := keys + m.theme.StatusDesc.Render(strings.Repeat(" ", gap)) + info
	return m.theme.StatusBar.Width(width).Render(line)
}
