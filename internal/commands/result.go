// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
package commands

import "fmt"

// =============================================================================
// EFFECTS
// =============================================================================

// EffectKind identifies the collaborator request carried by a Result.
type EffectKind int

const (
	EffectClearOutput EffectKind = iota // Empty the output log and hide the surface
	EffectToggleTheme                   // Flip the light/dark theme
	EffectNavigate                      // Move to a section, page or external profile
	EffectDownload                      // Start a file download
)

// String returns a short name for logs.
func (k EffectKind) String() string {
	switch k {
	case EffectClearOutput:
		return "clear_output"
	case EffectToggleTheme:
		return "toggle_theme"
	case EffectNavigate:
		return "navigate"
	case EffectDownload:
		return "download"
	default:
		return "unknown"
	}
}

// TargetKind tells the navigator how to reach a destination.
type TargetKind int

const (
	TargetSection  TargetKind = iota // Scroll to a section of the home page (goto)
	TargetPage                       // Switch to a listing page (open projects, open blog)
	TargetExternal                   // Open an external profile (open github, open linkedin)
)

// String returns a short name for logs.
func (k TargetKind) String() string {
	switch k {
	case TargetSection:
		return "section"
	case TargetPage:
		return "page"
	case TargetExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Target is a navigation destination.
type Target struct {
	Name string
	Kind TargetKind
}

// Effect is a request for a collaborator, applied by the interpreter after the
// handler returns.
type Effect struct {
	Kind EffectKind

	// Target is set for EffectNavigate
	Target Target

	// Path and SuggestedName are set for EffectDownload
	Path          string
	SuggestedName string
}

// =============================================================================
// RESULT
// =============================================================================

// Result is what a handler hands back: text to render and an optional effect.
// Empty Text means "no output".
type Result struct {
	Text   string
	Kind   LineKind
	Effect *Effect
}

// Text returns a response result.
func Text(s string) Result {
	return Result{Text: s, Kind: KindResponse}
}

// Textf returns a formatted response result.
func Textf(format string, args ...interface{}) Result {
	return Text(fmt.Sprintf(format, args...))
}

// Errorf returns a formatted error result.
func Errorf(format string, args ...interface{}) Result {
	return Result{Text: fmt.Sprintf(format, args...), Kind: KindError}
}

// WithEffect attaches an effect to the result.
func (r Result) WithEffect(e Effect) Result {
	r.Effect = &e
	return r
}
