// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the termfolio TUI.

All colors are Lip Gloss AdaptiveColor values. The theme collaborator sets
lipgloss.SetHasDarkBackground on every switch, and the TUI rebuilds its Theme
so each output line kind picks up the matching palette.

# Output Line Styles

	Prompt        - The echoed prompt, bold green
	CommandLine   - The echoed command text
	ResponseLine  - Command output
	ErrorLine     - Unknown commands and bad targets
	SuccessLine   - The welcome banner
	NoticeLine    - Host notices such as download results

# Layout

GetLayoutMode classifies the window width; the TUI hides the page pane on
narrow terminals and places it beside the output on wide ones.
*/
package styles
