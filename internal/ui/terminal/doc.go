// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package terminal provides the Bubble Tea host for the portfolio terminal.

The host owns the screen and feeds the command interpreter from its event
loop. Everything the interpreter touches runs inside Update; background work
(downloads, content reloads) comes back as messages.

# Layout

	┌──────────────────────────────────────────────┐
	│ ● ● ●        visitor@portfolio: ~            │  title bar
	│ output viewport          │ page pane         │  body
	│ visitor@portfolio:~$ _                       │  input line
	│ enter run  tab complete  ...      about dark │  status bar
	└──────────────────────────────────────────────┘

The page pane renders the current page markdown with glamour. It sits beside
the output on wide terminals, below it on medium ones, and is hidden on narrow
ones.

# Keys

  - Enter submits the input line
  - Up/Down browse history
  - Tab completes a command name
  - Ctrl+T toggles the theme
  - Ctrl+L clears the output
  - PgUp/PgDn scroll the output
  - Esc/Ctrl+C quit
*/
package terminal
