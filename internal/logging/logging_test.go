// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestL_NoopBeforeInit(t *testing.T) {
	reset()
	l := L()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Infow("ignored", "k", "v") })
	assert.NotPanics(t, Sync)
}

func TestInit_WritesJSON(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := filepath.Join(t.TempDir(), "logs", "termfolio.log")
	require.NoError(t, Init(Options{Path: path, Level: "info", Mode: ModeProd}))

	L().Named("test").Infow("command executed", "command", "help")
	L().Debugw("filtered out")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "command executed", entry["msg"])
	assert.Equal(t, "help", entry["command"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "test", entry["logger"])
	assert.Contains(t, entry, "ts")
}

func TestInit_DevModeDefaultsToDebug(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := filepath.Join(t.TempDir(), "dev.log")
	require.NoError(t, Init(Options{Path: path, Mode: "development"}))
	assert.Equal(t, zapcore.DebugLevel, atomicLevel.Level())

	L().Debugw("visible in dev")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible in dev")
	assert.NotContains(t, string(data), `{"level"`)
}

func TestInit_Errors(t *testing.T) {
	reset()
	t.Cleanup(reset)

	assert.Error(t, Init(Options{}))
	assert.Error(t, Init(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"}))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		want    zapcore.Level
		wantErr bool
	}{
		{"", ModeProd, zap.InfoLevel, false},
		{"", ModeDev, zap.DebugLevel, false},
		{"DEBUG", ModeProd, zap.DebugLevel, false},
		{"warning", ModeProd, zap.WarnLevel, false},
		{"error", ModeProd, zap.ErrorLevel, false},
		{"trace", ModeProd, zap.InfoLevel, true},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.name, tc.mode)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q, %q) = %v, want %v", tc.name, tc.mode, got, tc.want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	reset()
	t.Cleanup(reset)

	SetLevel(zap.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, atomicLevel.Level())
}
