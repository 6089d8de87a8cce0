// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package download saves portfolio files into the user's download directory.
package download

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/util"
)

// maxDuplicates bounds the "name (n).ext" search.
const maxDuplicates = 99

var (
	// ErrRateLimited is reported when a download arrives too soon after the last.
	ErrRateLimited = errors.New("download rate limited")

	// ErrNoSource is reported when no source path was given.
	ErrNoSource = errors.New("no file to download")
)

// Event describes a finished download request.
type Event struct {
	Source      string
	Destination string
	Bytes       int64
	Err         error
}

// Options configures a Manager.
type Options struct {
	// Dir receives the files
	Dir string

	// MinInterval is the minimum time between downloads; 0 disables limiting
	MinInterval time.Duration

	// Notify, if set, is called from the download goroutine when a request
	// finishes or is dropped
	Notify func(Event)

	// Logger receives download records
	Logger *zap.SugaredLogger
}

// Manager implements commands.Downloader. Downloads run in the background.
type Manager struct {
	dir     string
	limiter *rate.Limiter
	notify  func(Event)
	log     *zap.SugaredLogger

	mu sync.Mutex // serialises destination selection
	wg sync.WaitGroup
}

var _ commands.Downloader = (*Manager)(nil)

// New creates a download manager.
func New(opts Options) *Manager {
	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}

	m := &Manager{
		dir:     opts.Dir,
		limiter: rate.NewLimiter(limit, 1),
		notify:  opts.Notify,
		log:     opts.Logger,
	}
	if m.log == nil {
		m.log = zap.NewNop().Sugar()
	}
	return m
}

// DownloadFile copies path into the download directory as suggestedName.
// It returns immediately; the outcome is logged and passed to Notify from a
// background goroutine, including when the request is rate limited.
func (m *Manager) DownloadFile(path, suggestedName string) {
	allowed := m.limiter.Allow()
	if !allowed {
		m.log.Infow("download dropped", "path", path, "reason", "rate limited")
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if !allowed {
			m.emit(Event{Source: path, Err: ErrRateLimited})
			return
		}
		m.emit(m.copy(path, suggestedName))
	}()
}

// Wait blocks until all started downloads have finished.
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) copy(src, suggestedName string) (ev Event) {
	ev.Source = src

	defer func() {
		if r := recover(); r != nil {
			ev.Err = fmt.Errorf("download panicked: %v", r)
			m.log.Errorw("download panicked", "path", src, "panic", r)
		}
	}()

	if src == "" {
		ev.Err = ErrNoSource
		m.log.Warnw("download failed", "error", ev.Err)
		return ev
	}

	name := sanitizeName(suggestedName)
	if name == "" {
		name = filepath.Base(src)
	}

	m.mu.Lock()
	dst, err := m.destination(name)
	if err == nil {
		ev.Bytes, err = util.AtomicCopyFile(src, dst, 0644)
	}
	m.mu.Unlock()

	if err != nil {
		ev.Err = err
		m.log.Warnw("download failed", "path", src, "error", err)
		return ev
	}

	ev.Destination = dst
	m.log.Infow("download complete",
		"path", src,
		"destination", dst,
		"size", humanize.Bytes(uint64(ev.Bytes)),
	)
	return ev
}

// destination picks a free file name, adding " (n)" before the extension
// when the name is taken.
func (m *Manager) destination(name string) (string, error) {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	candidate := filepath.Join(m.dir, name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 1; i <= maxDuplicates; i++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
		candidate = filepath.Join(m.dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
	}
	return "", fmt.Errorf("too many copies of %s in %s", name, m.dir)
}

func (m *Manager) emit(ev Event) {
	if m.notify != nil {
		m.notify(ev)
	}
}

// sanitizeName strips any directory part from a suggested file name.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.FromSlash(name))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// Describe renders an event for display.
func Describe(ev Event) string {
	switch {
	case ev.Err == nil:
		return fmt.Sprintf("Saved %s (%s)", ev.Destination, humanize.Bytes(uint64(ev.Bytes)))
	case errors.Is(ev.Err, ErrRateLimited):
		return "Download skipped: please wait a moment before trying again."
	default:
		return fmt.Sprintf("Download failed: %v", ev.Err)
	}
}
