// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
package commands

import (
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/termfolio/internal/content"
)

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// ThemeToggler switches between the light and dark themes.
type ThemeToggler interface {
	// Current returns the active theme name ("dark" or "light")
	Current() string

	// Toggle flips the theme and returns the new name
	Toggle() string
}

// Navigator moves the host to a destination. Fire-and-forget.
type Navigator interface {
	NavigateTo(target Target)
}

// Downloader starts a file download. Fire-and-forget.
type Downloader interface {
	DownloadFile(path, suggestedName string)
}

// Surface is the rendering side of the output log.
type Surface interface {
	SetVisible(visible bool)
	ScrollToEnd()
}

// =============================================================================
// CONTEXT TYPE
// =============================================================================

// Context provides the collaborators a command may call into.
// It is built once by the host and handed to the interpreter; handlers never
// reach for globals.
//
// All fields are optional and may be nil.
type Context struct {
	// Content supplies static command text, links and the resume location
	Content *content.Catalog

	// Theme is the light/dark theme collaborator
	Theme ThemeToggler

	// Navigator handles goto and open
	Navigator Navigator

	// Downloader handles the resume download
	Downloader Downloader

	// Surface is notified when the output log changes visibility
	Surface Surface

	// Now returns the current time (used by date)
	Now func() time.Time

	// Logger receives debug records for every command
	Logger *zap.SugaredLogger
}

// Catalog returns the configured catalog or the built-in one.
func (c *Context) Catalog() *content.Catalog {
	if c == nil || c.Content == nil {
		return content.Default()
	}
	return c.Content
}

// now returns the current time from the configured clock.
func (c *Context) now() time.Time {
	if c == nil || c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// logger returns the configured logger or a no-op one.
func (c *Context) logger() *zap.SugaredLogger {
	if c == nil || c.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return c.Logger
}
