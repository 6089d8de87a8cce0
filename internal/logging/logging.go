// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the process-wide structured logger.
//
// The TUI owns the terminal, so logs always go to a rotated file, never to
// stdout. Until Init is called, L returns a no-op logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Modes select the encoder.
const (
	ModeDev  = "dev"  // human-readable console encoder
	ModeProd = "prod" // JSON encoder
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
	closer func() error

	noopLogger = zap.NewNop().Sugar()

	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// Options configures Init.
type Options struct {
	// Path of the log file; its directory is created if needed
	Path string

	// Level is debug, info, warn or error; empty picks by Mode
	Level string

	// Mode is ModeDev or ModeProd
	Mode string

	// MaxSizeMB, MaxBackups and MaxAgeDays control rotation
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Init initializes the global logger writing to a rotated file.
func Init(opts Options) error {
	if opts.Path == "" {
		return fmt.Errorf("logging: no log path")
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return fmt.Errorf("logging: create log directory: %w", err)
	}

	mode := normalizeMode(opts.Mode)
	level, err := ParseLevel(opts.Level, mode)
	if err != nil {
		return err
	}
	atomicLevel.SetLevel(level)

	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    orDefault(opts.MaxSizeMB, 10),
		MaxBackups: orDefault(opts.MaxBackups, 3),
		MaxAge:     orDefault(opts.MaxAgeDays, 14),
		Compress:   true,
	}

	core := zapcore.NewCore(newEncoder(mode), zapcore.AddSync(rotator), atomicLevel)
	l := zap.New(core, zap.AddCaller()).Sugar()

	mu.Lock()
	logger = l
	closer = rotator.Close
	mu.Unlock()

	l.Infow("logger initialized", "mode", mode, "level", level.String(), "path", opts.Path)
	return nil
}

// Sync flushes buffered entries and closes the log file.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		_ = logger.Sync()
	}
	if closer != nil {
		_ = closer()
		closer = nil
	}
}

// SetLevel changes the log level at runtime.
func SetLevel(level zapcore.Level) {
	atomicLevel.SetLevel(level)
}

// ParseLevel maps a level name to a zap level. An empty name defaults to
// debug in dev mode and info otherwise.
func ParseLevel(name, mode string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		if normalizeMode(mode) == ModeDev {
			return zap.DebugLevel, nil
		}
		return zap.InfoLevel, nil
	case "debug":
		return zap.DebugLevel, nil
	case "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("logging: unknown level %q", name)
	}
}

func normalizeMode(mode string) string {
	switch strings.ToLower(mode) {
	case "dev", "development":
		return ModeDev
	default:
		return ModeProd
	}
}

func newEncoder(mode string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	if mode == ModeDev {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// reset restores the uninitialized state.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	logger = nil
	closer = nil
	atomicLevel.SetLevel(zap.InfoLevel)
}
