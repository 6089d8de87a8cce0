// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/download"
	"github.com/jeranaias/termfolio/internal/theme"
)

// eventBuffer bounds the download events queued between prompts.
const eventBuffer = 8

// Pages reports section and page changes to the REPL.
type Pages interface {
	Current() commands.Target
	OnNavigate(fn func(commands.Target))
}

// REPLOptions configures a REPL.
type REPLOptions struct {
	// Interpreter runs the entered lines (required)
	Interpreter *commands.Interpreter

	// Pages reports navigation; a page change prints the page markdown
	Pages Pages

	// Themes selects the markdown style
	Themes interface{ Current() string }

	// Reloads delivers catalog reloads from the content watcher
	Reloads <-chan content.Reload

	// Out receives the output (required)
	Out io.Writer

	// Logger receives host records
	Logger *zap.SugaredLogger
}

// =============================================================================
// REPL
// =============================================================================

// REPL is the line-mode host: a liner prompt with history and tab completion.
//
// The interpreter is only called from Run's goroutine. Download events and
// catalog reloads are queued and applied before the next prompt.
type REPL struct {
	in      *commands.Interpreter
	pages   Pages
	themes  interface{ Current() string }
	reloads <-chan content.Reload
	out     io.Writer
	log     *zap.SugaredLogger

	printer     *printer
	events      chan download.Event
	pageName    string
	pagePending bool
}

// NewREPL creates a REPL.
func NewREPL(opts REPLOptions) *REPL {
	r := &REPL{
		in:      opts.Interpreter,
		pages:   opts.Pages,
		themes:  opts.Themes,
		reloads: opts.Reloads,
		out:     opts.Out,
		log:     opts.Logger,
		events:  make(chan download.Event, eventBuffer),
	}
	if r.log == nil {
		r.log = zap.NewNop().Sugar()
	}
	r.printer = &printer{out: r.out, onClear: r.clearScreen}
	if r.pages != nil {
		r.pageName = r.pages.Current().Name
		r.pages.OnNavigate(r.pageChanged)
	}
	return r
}

// pageChanged records a navigation. Listeners run inside Submit, so this is
// always on Run's goroutine.
func (r *REPL) pageChanged(target commands.Target) {
	if target.Name == r.pageName {
		return
	}
	r.pageName = target.Name
	r.pagePending = true
}

// Notify queues a download event. Safe to call from any goroutine; events
// beyond the buffer are dropped and logged.
func (r *REPL) Notify(ev download.Event) {
	select {
	case r.events <- ev:
	default:
		r.log.Warnw("dropped download event", "source", ev.Source)
	}
}

// Run prints the welcome banner and reads lines until Ctrl+C or Ctrl+D.
func (r *REPL) Run() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetCompleter(r.complete)

	id := r.in.Context().Catalog().Identity
	r.in.Print(commands.KindSuccess, id.Welcome)
	r.in.Print(commands.KindResponse, id.Hint)
	r.flush()

	for {
		r.drain()

		input, err := line.Prompt(r.in.Prompt() + " ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, DimStyle.Render("bye"))
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		r.Handle(input)
		if trimmed := strings.TrimSpace(input); trimmed != "" {
			line.AppendHistory(trimmed)
		}
	}
}

// Handle submits one line and prints its output.
func (r *REPL) Handle(input string) {
	r.in.Submit(input)
	r.flush()
}

// flush prints new output lines and, after navigation, the new page.
func (r *REPL) flush() {
	r.printer.flush(r.in)

	if !r.pagePending {
		return
	}
	r.pagePending = false

	markdown := r.in.Context().Catalog().Page(r.pageName)
	if markdown == "" {
		return
	}
	style := theme.GlamourStyle(theme.Dark)
	if r.themes != nil {
		style = theme.GlamourStyle(r.themes.Current())
	}
	fmt.Fprintln(r.out, renderMarkdown(markdown, style, GetTerminalWidth()))
}

// drain applies queued download events and catalog reloads.
func (r *REPL) drain() {
	for {
		select {
		case ev := <-r.events:
			kind := commands.KindSuccess
			if ev.Err != nil {
				kind = commands.KindError
			}
			r.in.Print(kind, download.Describe(ev))
			r.flush()

		case reload, ok := <-r.reloads:
			if !ok {
				r.reloads = nil
				continue
			}
			r.applyReload(reload)

		default:
			return
		}
	}
}

func (r *REPL) applyReload(reload content.Reload) {
	if reload.Err != nil {
		r.in.Print(commands.KindError, "Content reload failed: "+reload.Err.Error())
		r.flush()
		return
	}
	if reload.Catalog == nil {
		return
	}
	r.in.Context().Content = reload.Catalog
	if setter, ok := r.pages.(interface{ SetCatalog(*content.Catalog) }); ok {
		setter.SetCatalog(reload.Catalog)
	}
	r.log.Infow("content swapped", "source", reload.Catalog.Source())
}

// complete offers command names while the first word is being typed.
// Ambiguous prefixes are recorded in the output log by the interpreter;
// liner lists the candidates itself, so those lines are not printed again.
func (r *REPL) complete(line string) []string {
	if strings.ContainsAny(strings.TrimLeft(line, " "), " \t") {
		return nil
	}
	partial := strings.TrimSpace(line)
	if match, ok := r.in.Complete(partial); ok {
		return []string{match}
	}
	r.printer.skip(r.in)
	return r.in.Registry().Matches(partial)
}

// clearScreen wipes the terminal after the clear command.
func (r *REPL) clearScreen() {
	if !ColorsEnabled() {
		return
	}
	termenv.NewOutput(r.out).ClearScreen()
}
