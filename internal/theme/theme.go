// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme manages the light/dark theme and remembers the last choice.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/jeranaias/termfolio/internal/util"
)

// Theme names.
const (
	Dark  = "dark"
	Light = "light"
	Auto  = "auto"
)

// ErrUnknownTheme is returned by Set for names other than dark and light.
var ErrUnknownTheme = errors.New("unknown theme")

// state is the persisted theme preference.
type state struct {
	Theme     string    `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Options configures a Manager.
type Options struct {
	// Default is used when nothing was persisted: dark, light or auto
	Default string

	// StatePath is where the preference is stored; empty disables persistence
	StatePath string

	// Logger receives persistence failures
	Logger *zap.SugaredLogger

	// DetectDark reports whether the terminal background is dark, for "auto".
	// Defaults to termenv background detection.
	DetectDark func() bool
}

// Manager owns the current theme. It is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	current   string
	statePath string
	log       *zap.SugaredLogger
}

// NewManager creates a manager, restoring the persisted preference when one
// exists, and applies the theme to lipgloss.
func NewManager(opts Options) *Manager {
	m := &Manager{
		statePath: opts.StatePath,
		log:       opts.Logger,
	}
	if m.log == nil {
		m.log = zap.NewNop().Sugar()
	}

	detect := opts.DetectDark
	if detect == nil {
		detect = termenv.HasDarkBackground
	}

	name, ok := m.load()
	if !ok {
		name = resolve(opts.Default, detect)
	}
	m.current = name
	apply(name)
	return m
}

// Current returns the active theme name.
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Toggle flips between dark and light, persists the choice and returns the
// new name.
func (m *Manager) Toggle() string {
	m.mu.Lock()
	next := Dark
	if m.current == Dark {
		next = Light
	}
	m.mu.Unlock()

	// next is always a known name
	_ = m.Set(next)
	return next
}

// Set switches to name ("dark" or "light") and persists it.
func (m *Manager) Set(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name != Dark && name != Light {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	m.mu.Lock()
	m.current = name
	m.mu.Unlock()

	apply(name)
	m.save(name)
	return nil
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func (m *Manager) load() (string, bool) {
	if m.statePath == "" {
		return "", false
	}

	data, err := os.ReadFile(m.statePath)
	if err != nil {
		if !os.IsNotExist(err) {
			m.log.Warnw("failed to read theme state", "path", m.statePath, "error", err)
		}
		return "", false
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		m.log.Warnw("ignoring corrupt theme state", "path", m.statePath, "error", err)
		return "", false
	}
	if s.Theme != Dark && s.Theme != Light {
		m.log.Warnw("ignoring unknown persisted theme", "theme", s.Theme)
		return "", false
	}
	return s.Theme, true
}

// save persists name; failures are logged and otherwise ignored.
func (m *Manager) save(name string) {
	if m.statePath == "" {
		return
	}

	data, err := json.MarshalIndent(state{Theme: name, UpdatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		m.log.Warnw("failed to encode theme state", "error", err)
		return
	}
	if err := util.AtomicWriteFile(m.statePath, data, 0644); err != nil {
		m.log.Warnw("failed to persist theme", "path", m.statePath, "error", err)
		return
	}
	m.log.Debugw("theme persisted", "theme", name, "path", m.statePath)
}

// =============================================================================
// HELPERS
// =============================================================================

// resolve turns a configured default into dark or light.
func resolve(name string, detectDark func() bool) string {
	switch strings.ToLower(name) {
	case Light:
		return Light
	case Auto:
		if detectDark() {
			return Dark
		}
		return Light
	default:
		return Dark
	}
}

// apply points lipgloss adaptive colors at the theme.
func apply(name string) {
	lipgloss.SetHasDarkBackground(name == Dark)
}

// GlamourStyle returns the glamour standard style matching name.
func GlamourStyle(name string) string {
	if name == Light {
		return "light"
	}
	return "dark"
}
