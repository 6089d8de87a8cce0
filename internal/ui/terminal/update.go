// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/download"
	"github.com/jeranaias/termfolio/internal/theme"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.sync()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case WelcomeMsg:
		id := m.in.Context().Catalog().Identity
		m.in.Print(commands.KindSuccess, id.Welcome)
		m.in.Print(commands.KindResponse, id.Hint)
		m.sync()
		return m, nil

	case ContentReloadMsg:
		m.handleReload(msg)
		return m, waitForReload(m.reloads)

	case reloadsClosedMsg:
		m.log.Debugw("content watcher stopped")
		return m, nil

	case DownloadMsg:
		kind := commands.KindSuccess
		if msg.Event.Err != nil {
			kind = commands.KindError
		}
		m.in.Print(kind, download.Describe(msg.Event))
		m.sync()
		return m, nil

	default:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		m.output, cmd = m.output.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		line := m.input.Value()
		m.input.SetValue("")
		m.in.Submit(line)
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Previous):
		if line, ok := m.in.HistoryPrevious(); ok {
			m.setInput(line)
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if line, ok := m.in.HistoryNext(); ok {
			m.setInput(line)
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		if name, ok := m.in.Complete(m.input.Value()); ok {
			m.setInput(name)
		}
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		if m.themes != nil {
			m.themes.Toggle()
		}
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.in.Submit("clear")
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.output.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.output.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setInput(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
}

// handleReload swaps in a reloaded catalog. Failed reloads keep the old one.
func (m *Model) handleReload(msg ContentReloadMsg) {
	if msg.Reload.Err != nil {
		m.in.Print(commands.KindError, "Content reload failed: "+msg.Reload.Err.Error())
		m.sync()
		return
	}
	if msg.Reload.Catalog == nil {
		return
	}

	m.in.Context().Content = msg.Reload.Catalog
	if m.pages != nil {
		m.pages.SetCatalog(msg.Reload.Catalog)
	}
	m.log.Infow("content swapped", "source", msg.Reload.Catalog.Source())
	m.pageName = ""
	m.sync()
}

// =============================================================================
// VIEW SYNC
// =============================================================================

// sync pulls interpreter, theme and navigation state into the view.
func (m *Model) sync() {
	if m.themes != nil && m.themes.Current() != m.themeName {
		m.applyTheme()
	}
	if m.pages != nil {
		if current := m.pages.Current().Name; current != m.pageName {
			m.pageName = current
			m.renderPage()
		}
	}
	m.renderOutput()
}

// applyTheme rebuilds the styles for the current lipgloss background.
func (m *Model) applyTheme() {
	name := theme.Dark
	if m.themes != nil {
		name = m.themes.Current()
	}
	m.themeName = name

	m.theme = styles.NewTheme()
	m.theme.SetSize(m.width, m.height)

	m.input.PromptStyle = m.theme.Prompt
	m.input.TextStyle = m.theme.ResponseLine
	m.input.PlaceholderStyle = m.theme.Hint

	m.help.Styles.ShortKey = m.theme.StatusKey
	m.help.Styles.ShortDesc = m.theme.StatusDesc
	m.help.Styles.ShortSeparator = m.theme.StatusDesc
	m.help.Styles.Ellipsis = m.theme.StatusDesc

	m.markdown.configure(theme.GlamourStyle(name), m.page.Width)
	m.renderPage()
}

// renderOutput re-renders the output log into the output viewport.
func (m *Model) renderOutput() {
	lines := m.in.Lines()
	prompt := m.in.Prompt()

	rendered := make([]string, 0, len(lines))
	wrap := lipgloss.NewStyle().Width(m.output.Width)
	for _, line := range lines {
		rendered = append(rendered, wrap.Render(m.theme.RenderLine(line, prompt)))
	}
	m.output.SetContent(strings.Join(rendered, "\n"))

	if m.surface.takeFollow() {
		m.output.GotoBottom()
	}
}

// renderPage re-renders the current page into the page viewport.
func (m *Model) renderPage() {
	if m.pages == nil || m.pageName == "" {
		m.page.SetContent("")
		return
	}
	markdown := m.in.Context().Catalog().Page(m.pageName)
	m.page.SetContent(m.markdown.render(markdown))
	m.page.GotoTop()
}
