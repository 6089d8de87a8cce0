// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/theme"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// inputCharLimit bounds the input field.
const inputCharLimit = 256

// =============================================================================
// COLLABORATORS
// =============================================================================

// Themes is the theme state the window follows. *theme.Manager implements it.
type Themes interface {
	Current() string
	Toggle() string
}

// Pages tracks the page shown in the page pane. *navigation.Navigator
// implements it.
type Pages interface {
	Current() commands.Target
	SetCatalog(cat *content.Catalog)
}

// Options configures the terminal window.
type Options struct {
	// Interpreter runs the submitted lines (required)
	Interpreter *commands.Interpreter

	// Themes is toggled by Ctrl+T; nil keeps the startup colors
	Themes Themes

	// Pages selects the page pane content; nil hides the pane
	Pages Pages

	// Reloads delivers catalog reloads from the content watcher
	Reloads <-chan content.Reload

	// WelcomeDelay postpones the welcome banner; zero prints it at once
	WelcomeDelay time.Duration

	// Logger receives host records
	Logger *zap.SugaredLogger
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model of the terminal window.
type Model struct {
	in      *commands.Interpreter
	themes  Themes
	pages   Pages
	reloads <-chan content.Reload
	delay   time.Duration
	log     *zap.SugaredLogger

	// Styling
	theme     *styles.Theme
	themeName string

	// UI Components
	input  textinput.Model
	output viewport.Model
	page   viewport.Model
	help   help.Model
	keys   KeyMap

	// surface is shared with the interpreter context
	surface *surface

	markdown *pageRenderer
	pageName string

	// Dimensions
	width  int
	height int
}

// New creates the terminal window model and attaches its surface to the
// interpreter.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	delay := opts.WelcomeDelay
	if delay < 0 {
		delay = 0
	}

	surf := &surface{}
	opts.Interpreter.Context().Surface = surf

	ti := textinput.New()
	ti.Prompt = opts.Interpreter.Prompt() + " "
	ti.CharLimit = inputCharLimit
	ti.Focus()

	m := Model{
		in:       opts.Interpreter,
		themes:   opts.Themes,
		pages:    opts.Pages,
		reloads:  opts.Reloads,
		delay:    delay,
		log:      log,
		input:    ti,
		output:   viewport.New(80, 20),
		page:     viewport.New(40, 20),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		surface:  surf,
		width:    80,
		height:   24,
		markdown: newPageRenderer(theme.GlamourStyle(theme.Dark), log),
	}
	m.applyTheme()
	m.layout()
	m.sync()
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink, the welcome timer and the reload listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}

	if m.delay == 0 {
		cmds = append(cmds, func() tea.Msg { return WelcomeMsg{} })
	} else {
		cmds = append(cmds, tea.Tick(m.delay, func(time.Time) tea.Msg { return WelcomeMsg{} }))
	}

	if cmd := waitForReload(m.reloads); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
