// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/download"
)

// =============================================================================
// MESSAGES
// =============================================================================

// WelcomeMsg prints the welcome banner and hint.
type WelcomeMsg struct{}

// ContentReloadMsg carries a catalog reload from the content watcher.
type ContentReloadMsg struct {
	Reload content.Reload
}

// DownloadMsg reports a finished download. It is sent from the download
// manager's goroutine through tea.Program.Send.
type DownloadMsg struct {
	Event download.Event
}

// reloadsClosedMsg signals that the watcher channel was closed.
type reloadsClosedMsg struct{}

// waitForReload blocks on the watcher channel and returns the next reload.
func waitForReload(ch <-chan content.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return reloadsClosedMsg{}
		}
		return ContentReloadMsg{Reload: r}
	}
}
