// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
package commands

import "strings"

// DefaultPrompt is echoed in front of every submitted line.
const DefaultPrompt = "visitor@portfolio:~$"

// =============================================================================
// INTERPRETER
// =============================================================================

// Interpreter turns input lines into output lines.
//
// It is single-threaded: hosts call it from their event loop and every call
// runs to completion before returning.
type Interpreter struct {
	registry *Registry
	ctx      *Context
	history  *History
	output   *OutputLog
	prompt   string
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithPrompt sets the prompt echoed before submitted lines.
func WithPrompt(prompt string) Option {
	return func(in *Interpreter) {
		if prompt != "" {
			in.prompt = prompt
		}
	}
}

// WithHistorySize sets the history capacity.
func WithHistorySize(size int) Option {
	return func(in *Interpreter) {
		in.history = NewHistory(size)
	}
}

// New creates an interpreter over registry. The registry is sealed.
// A nil ctx is replaced with an empty Context.
func New(registry *Registry, ctx *Context, opts ...Option) *Interpreter {
	if ctx == nil {
		ctx = &Context{}
	}
	registry.Seal()

	in := &Interpreter{
		registry: registry,
		ctx:      ctx,
		history:  NewHistory(DefaultHistorySize),
		output:   &OutputLog{},
		prompt:   DefaultPrompt,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// =============================================================================
// SUBMIT
// =============================================================================

// Submit executes one input line.
// Blank lines are ignored entirely: no echo, no history entry.
func (in *Interpreter) Submit(line string) {
	parsed := Parse(line)
	if parsed.Empty {
		return
	}

	in.output.Append(KindCommand, in.echo(parsed.RawInput))

	if cmd := in.registry.Get(parsed.CommandName); cmd != nil {
		result := in.execute(cmd, parsed.Args)
		in.ctx.logger().Debugw("command executed",
			"command", cmd.Name,
			"args", len(parsed.Args),
			"kind", result.Kind.String(),
		)
		if result.Effect != nil {
			in.apply(*result.Effect)
		}
		if result.Text != "" {
			in.output.Append(result.Kind, result.Text)
		}
	} else {
		in.ctx.logger().Debugw("unknown command", "command", parsed.CommandName)
		in.output.Append(KindError, "Command not found: "+parsed.CommandName+". Type 'help' for available commands.")
	}

	in.history.Push(parsed.RawInput)
	in.refreshSurface()
}

// execute runs a handler, turning a panic into an error line.
func (in *Interpreter) execute(cmd *Command, args []string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			in.ctx.logger().Errorw("command panicked", "command", cmd.Name, "panic", r)
			result = Errorf("%s: command failed", cmd.Name)
		}
	}()
	return cmd.Handler.Execute(in.ctx, args)
}

// apply forwards an effect to its collaborator.
func (in *Interpreter) apply(effect Effect) {
	log := in.ctx.logger()
	log.Debugw("applying effect", "effect", effect.Kind.String())

	switch effect.Kind {
	case EffectClearOutput:
		in.output.Clear()

	case EffectToggleTheme:
		if in.ctx.Theme == nil {
			log.Debugw("no theme collaborator")
			return
		}
		log.Debugw("theme toggled", "theme", in.ctx.Theme.Toggle())

	case EffectNavigate:
		if in.ctx.Navigator == nil {
			log.Debugw("no navigation collaborator", "target", effect.Target.Name)
			return
		}
		in.ctx.Navigator.NavigateTo(effect.Target)

	case EffectDownload:
		if in.ctx.Downloader == nil {
			log.Debugw("no download collaborator", "path", effect.Path)
			return
		}
		in.ctx.Downloader.DownloadFile(effect.Path, effect.SuggestedName)
	}
}

// refreshSurface syncs visibility and scrolls to the newest line.
func (in *Interpreter) refreshSurface() {
	if in.ctx.Surface == nil {
		return
	}
	in.ctx.Surface.SetVisible(in.output.Visible())
	in.ctx.Surface.ScrollToEnd()
}

func (in *Interpreter) echo(text string) string {
	return in.prompt + " " + text
}

// =============================================================================
// HISTORY BROWSING
// =============================================================================

// HistoryPrevious returns the next older history line for the input field.
// ok is false when there is nothing older; the field should stay unchanged.
func (in *Interpreter) HistoryPrevious() (line string, ok bool) {
	return in.history.Previous()
}

// HistoryNext returns the next newer history line for the input field.
// Stepping past the newest line yields ("", true) to clear the field.
func (in *Interpreter) HistoryNext() (line string, ok bool) {
	return in.history.Next()
}

// =============================================================================
// COMPLETION
// =============================================================================

// Complete performs tab completion on the input field text.
//
// With exactly one matching command it returns the command name and true.
// With several it lists them in the output log and returns false. With none
// it does nothing.
func (in *Interpreter) Complete(partial string) (string, bool) {
	matches := in.registry.Matches(partial)
	switch {
	case len(matches) == 1:
		return matches[0], true
	case len(matches) > 1:
		in.output.Append(KindCommand, in.echo(partial))
		in.output.Append(KindResponse, "Possible completions: "+strings.Join(matches, ", "))
		in.refreshSurface()
	}
	return "", false
}

// =============================================================================
// HOST ACCESS
// =============================================================================

// Print appends a host-originated line, such as the welcome banner.
func (in *Interpreter) Print(kind LineKind, text string) {
	in.output.Append(kind, text)
	in.refreshSurface()
}

// Lines returns a copy of the output log.
func (in *Interpreter) Lines() []OutputLine {
	return in.output.Lines()
}

// LinesSince returns the output lines from index from onwards.
func (in *Interpreter) LinesSince(from int) []OutputLine {
	return in.output.Since(from)
}

// OutputLen returns the number of output lines.
func (in *Interpreter) OutputLen() int {
	return in.output.Len()
}

// HistoryEntries returns the history, most recent first.
func (in *Interpreter) HistoryEntries() []string {
	return in.history.Entries()
}

// HistoryIndex returns the browsing cursor (-1 when not browsing).
func (in *Interpreter) HistoryIndex() int {
	return in.history.Index()
}

// Prompt returns the echo prompt.
func (in *Interpreter) Prompt() string {
	return in.prompt
}

// Registry returns the sealed command registry.
func (in *Interpreter) Registry() *Registry {
	return in.registry
}

// Context returns the collaborator context. Hosts may swap Content on their
// event loop when the catalog is reloaded.
func (in *Interpreter) Context() *Context {
	return in.ctx
}
