// termfolio - a portfolio you can talk to in a terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/termfolio/internal/cli"
	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/download"
	"github.com/jeranaias/termfolio/internal/logging"
	"github.com/jeranaias/termfolio/internal/navigation"
	"github.com/jeranaias/termfolio/internal/theme"
	"github.com/jeranaias/termfolio/internal/ui/terminal"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args, err := cli.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:"), err)
		fmt.Fprintln(os.Stderr, "Run 'termfolio help' for usage.")
		os.Exit(2)
	}

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
		return
	case cli.CmdHelp:
		cli.PrintUsage()
		return
	case cli.CmdConfig:
		if err := cli.HandleConfig(args, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:"), err)
			os.Exit(1)
		}
		return
	}

	a, err := setup(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:"), err)
		os.Exit(1)
	}
	defer logging.Sync()

	code := 0
	switch {
	case cmd == cli.CmdRun:
		code = a.runLines(args)
	case args.Plain || a.cfg.Terminal.Plain || !cli.CanRunTUI():
		err = a.runREPL()
	default:
		err = a.runTUI()
	}
	a.shutdown()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:"), err)
		code = 1
	}
	if code != 0 {
		logging.Sync()
		os.Exit(code)
	}
}

// =============================================================================
// APPLICATION WIRING
// =============================================================================

// app holds the collaborators shared by every host.
type app struct {
	cfg         *config.Config
	log         *zap.SugaredLogger
	contentPath string

	catalog   *content.Catalog
	themes    *theme.Manager
	nav       *navigation.Navigator
	downloads *download.Manager
	in        *commands.Interpreter

	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	sink func(download.Event)
}

// setup loads configuration and content and builds the interpreter.
func setup(args cli.Args) (*app, error) {
	cfg, err := cli.LoadConfig(args.ConfigPath)
	if err != nil {
		return nil, err
	}

	log := initLogging(cfg, args.Verbose)

	contentPath := args.ContentPath
	if contentPath == "" {
		if contentPath, err = cfg.ContentPath(); err != nil {
			return nil, err
		}
	}
	catalog, err := content.LoadOrDefault(contentPath)
	if err != nil {
		return nil, err
	}
	log.Infow("content loaded", "source", catalog.Source(), "pages", len(catalog.Pages))

	statePath, err := cfg.ThemeStatePath()
	if err != nil {
		log.Warnw("theme will not be remembered", "error", err)
		statePath = ""
	}
	themes := theme.NewManager(theme.Options{
		Default:   cfg.Theme.Default,
		StatePath: statePath,
		Logger:    log.Named("theme"),
	})
	if args.Theme != "" {
		if err := themes.Set(args.Theme); err != nil {
			return nil, err
		}
	}

	nav := navigation.New(navigation.Options{
		Catalog: catalog,
		Logger:  log.Named("navigation"),
	})

	downloadDir, err := cfg.DownloadDir()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &app{
		cfg:         cfg,
		log:         log,
		contentPath: contentPath,
		catalog:     catalog,
		themes:      themes,
		nav:         nav,
		ctx:         ctx,
		cancel:      cancel,
	}
	a.downloads = download.New(download.Options{
		Dir:         downloadDir,
		MinInterval: cfg.DownloadInterval(),
		Notify:      a.notify,
		Logger:      log.Named("download"),
	})

	prompt := cfg.Terminal.Prompt
	if prompt == "" {
		prompt = catalog.Prompt()
	}
	a.in = commands.New(commands.NewDefaultRegistry(), &commands.Context{
		Content:    catalog,
		Theme:      themes,
		Navigator:  nav,
		Downloader: a.downloads,
		Logger:     log.Named("commands"),
	}, commands.WithPrompt(prompt), commands.WithHistorySize(cfg.Terminal.HistorySize))

	return a, nil
}

// initLogging starts the rotated file logger tagged with a session id.
// Logging failures are reported and the session continues without logs.
func initLogging(cfg *config.Config, verbose bool) *zap.SugaredLogger {
	path, err := cfg.LogPath()
	if err == nil {
		err = logging.Init(logging.Options{Path: path, Level: cfg.Log.Level, Mode: cfg.Log.Mode})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.DimStyle.Render("logging disabled: "+err.Error()))
	}
	if verbose {
		logging.SetLevel(zapcore.DebugLevel)
	}

	return logging.L().With("session", uuid.NewString())
}

// notify forwards a download event to the active host.
func (a *app) notify(ev download.Event) {
	a.mu.Lock()
	fn := a.sink
	a.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

func (a *app) setSink(fn func(download.Event)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sink = fn
}

// reloads starts the content watcher when a content file is in use.
func (a *app) reloads() <-chan content.Reload {
	if a.contentPath == "" || !a.cfg.Content.Watch {
		return nil
	}
	w, err := content.NewWatcher(a.contentPath, content.DefaultDebounce, a.log.Named("content"))
	if err != nil {
		a.log.Warnw("content watching disabled", "path", a.contentPath, "error", err)
		return nil
	}
	go func() {
		<-a.ctx.Done()
		w.Close()
	}()
	return w.Start(a.ctx)
}

// shutdown stops the watcher and waits for background work.
func (a *app) shutdown() {
	a.cancel()
	a.downloads.Wait()
	a.nav.Wait()
	a.log.Infow("session ended")
}

// =============================================================================
// HOSTS
// =============================================================================

// runTUI starts the full-screen terminal window.
func (a *app) runTUI() error {
	m := terminal.New(terminal.Options{
		Interpreter:  a.in,
		Themes:       a.themes,
		Pages:        a.nav,
		Reloads:      a.reloads(),
		WelcomeDelay: a.cfg.WelcomeDelay(),
		Logger:       a.log.Named("tui"),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	a.setSink(func(ev download.Event) {
		p.Send(terminal.DownloadMsg{Event: ev})
	})
	defer a.setSink(nil)

	a.log.Infow("starting terminal window")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running termfolio: %w", err)
	}
	return nil
}

// runREPL starts the line-mode prompt.
func (a *app) runREPL() error {
	r := cli.NewREPL(cli.REPLOptions{
		Interpreter: a.in,
		Pages:       a.nav,
		Themes:      a.themes,
		Reloads:     a.reloads(),
		Out:         os.Stdout,
		Logger:      a.log.Named("repl"),
	})
	a.setSink(r.Notify)
	defer a.setSink(nil)

	a.log.Infow("starting line prompt")
	return r.Run()
}

// runLines executes the lines given to "run" and returns the exit code.
func (a *app) runLines(args cli.Args) int {
	lines, err := cli.RunInput(args, os.Stdin, cli.IsTTY())
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:"), err)
		return 2
	}

	a.setSink(func(ev download.Event) {
		fmt.Fprintln(os.Stderr, download.Describe(ev))
	})

	if errs := cli.RunLines(a.in, lines, os.Stdout); errs > 0 {
		return 1
	}
	return 0
}
