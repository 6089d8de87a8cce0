// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package navigation moves the host between portfolio sections and opens
// external profiles in the system browser.
package navigation

import (
	"io"
	"sync"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/content"
)

// Home is the page shown before any navigation.
const Home = "about"

func init() {
	// The TUI owns the terminal; the browser launcher must not write to it.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Options configures a Navigator.
type Options struct {
	// Catalog resolves external links; nil uses the built-in catalog
	Catalog *content.Catalog

	// OpenURL opens an external URL; defaults to the system browser
	OpenURL func(url string) error

	// Logger receives navigation records
	Logger *zap.SugaredLogger
}

// Navigator implements commands.Navigator.
//
// Section and page targets change the current page and notify listeners.
// External targets are opened in the background and never block the caller.
type Navigator struct {
	mu        sync.Mutex
	catalog   *content.Catalog
	current   commands.Target
	openURL   func(url string) error
	log       *zap.SugaredLogger
	listeners []func(commands.Target)
	wg        sync.WaitGroup
}

var _ commands.Navigator = (*Navigator)(nil)

// New creates a navigator positioned on the home section.
func New(opts Options) *Navigator {
	n := &Navigator{
		catalog: opts.Catalog,
		current: commands.Target{Name: Home, Kind: commands.TargetSection},
		openURL: opts.OpenURL,
		log:     opts.Logger,
	}
	if n.catalog == nil {
		n.catalog = content.Default()
	}
	if n.openURL == nil {
		n.openURL = browser.OpenURL
	}
	if n.log == nil {
		n.log = zap.NewNop().Sugar()
	}
	return n
}

// NavigateTo moves to target.
func (n *Navigator) NavigateTo(target commands.Target) {
	if target.Kind == commands.TargetExternal {
		n.openExternal(target.Name)
		return
	}

	n.mu.Lock()
	n.current = target
	listeners := append([]func(commands.Target){}, n.listeners...)
	n.mu.Unlock()

	n.log.Debugw("navigated", "target", target.Name, "kind", target.Kind.String())
	for _, fn := range listeners {
		fn(target)
	}
}

// Current returns the section or page last navigated to.
func (n *Navigator) Current() commands.Target {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// OnNavigate registers fn to be called after each section or page change.
// Listeners run on the caller's goroutine.
func (n *Navigator) OnNavigate(fn func(commands.Target)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// SetCatalog replaces the catalog used to resolve external links.
func (n *Navigator) SetCatalog(cat *content.Catalog) {
	if cat == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.catalog = cat
}

// Wait blocks until every external open has finished.
func (n *Navigator) Wait() {
	n.wg.Wait()
}

func (n *Navigator) openExternal(name string) {
	n.mu.Lock()
	url := n.catalog.Link(name)
	n.mu.Unlock()

	if url == "" {
		n.log.Warnw("no link configured", "target", name)
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.openURL(url); err != nil {
			n.log.Warnw("failed to open browser", "url", url, "error", err)
			return
		}
		n.log.Infow("opened external link", "target", name, "url", url)
	}()
}
