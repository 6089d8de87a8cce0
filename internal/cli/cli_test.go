// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/download"
	"github.com/jeranaias/termfolio/internal/navigation"
)

func init() {
	forceColorsEnabled(false)
}

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantCmd Command
		want    Args
	}{
		{
			name:    "no args opens the window",
			argv:    nil,
			wantCmd: CmdTUI,
		},
		{
			name:    "explicit tui",
			argv:    []string{"tui"},
			wantCmd: CmdTUI,
			want:    Args{Raw: []string{}},
		},
		{
			name:    "global flags",
			argv:    []string{"--config", "/tmp/c.toml", "--content=site.toml", "--plain", "--theme", "LIGHT", "-v"},
			wantCmd: CmdTUI,
			want: Args{
				ConfigPath:  "/tmp/c.toml",
				ContentPath: "site.toml",
				Plain:       true,
				Theme:       "light",
				Verbose:     true,
			},
		},
		{
			name:    "run keeps lines verbatim",
			argv:    []string{"--plain", "run", "goto projects", "--theme"},
			wantCmd: CmdRun,
			want:    Args{Plain: true, Raw: []string{"goto projects", "--theme"}},
		},
		{
			name:    "config subcommand",
			argv:    []string{"--config", "c.toml", "config", "reset"},
			wantCmd: CmdConfig,
			want:    Args{ConfigPath: "c.toml", Raw: []string{"reset"}},
		},
		{
			name:    "version",
			argv:    []string{"version"},
			wantCmd: CmdVersion,
			want:    Args{Raw: []string{}},
		},
		{
			name:    "help flag",
			argv:    []string{"--help"},
			wantCmd: CmdHelp,
			want:    Args{Raw: []string{}},
		},
		{
			name:    "command word is case-insensitive",
			argv:    []string{"RUN", "about"},
			wantCmd: CmdRun,
			want:    Args{Raw: []string{"about"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := ParseArgs(tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.want, args)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"missing value", []string{"--config"}, "--config needs a value"},
		{"bad theme", []string{"--theme", "blue"}, "--theme must be dark or light"},
		{"unknown flag", []string{"--nope"}, `unknown flag "--nope"`},
		{"unknown command", []string{"serve"}, `unknown command "serve"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseArgs(tt.argv)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUsage))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "tui", CmdTUI.String())
	assert.Equal(t, "run", CmdRun.String())
	assert.Equal(t, "config", CmdConfig.String())
	assert.Equal(t, "version", CmdVersion.String())
	assert.Equal(t, "help", CmdHelp.String())
	assert.Equal(t, "unknown", Command(42).String())
}

// =============================================================================
// RUN MODE
// =============================================================================

func newInterpreter(nav commands.Navigator) *commands.Interpreter {
	return commands.New(commands.NewDefaultRegistry(), &commands.Context{Navigator: nav})
}

func TestRunLines(t *testing.T) {
	in := newInterpreter(nil)
	var out bytes.Buffer

	errs := RunLines(in, []string{"whoami", "", "pwd", "bogus"}, &out)

	assert.Equal(t, 1, errs)
	assert.Equal(t,
		"visitor@portfolio\n"+
			"/home/alex/portfolio\n"+
			"Command not found: bogus. Type 'help' for available commands.\n",
		out.String())
}

func TestRunLines_Clear(t *testing.T) {
	in := newInterpreter(nil)
	var out bytes.Buffer

	RunLines(in, []string{"echo one", "clear", "echo two"}, &out)

	assert.Equal(t, "one\ntwo\n", out.String())
}

func TestRunInput(t *testing.T) {
	lines, err := RunInput(Args{Raw: []string{"about"}}, strings.NewReader("ignored"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"about"}, lines)

	lines, err = RunInput(Args{}, strings.NewReader("whoami\npwd\n"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"whoami", "pwd"}, lines)

	_, err = RunInput(Args{}, strings.NewReader(""), true)
	assert.ErrorIs(t, err, ErrUsage)
}

// =============================================================================
// REPL
// =============================================================================

func newREPL(t *testing.T) (*REPL, *commands.Interpreter, *bytes.Buffer) {
	t.Helper()
	nav := navigation.New(navigation.Options{OpenURL: func(string) error { return nil }})
	in := newInterpreter(nav)
	var out bytes.Buffer
	r := NewREPL(REPLOptions{Interpreter: in, Pages: nav, Out: &out})
	return r, in, &out
}

func TestREPL_Handle(t *testing.T) {
	r, _, out := newREPL(t)

	r.Handle("echo hello   world")
	assert.Equal(t, "hello world\n", out.String())

	out.Reset()
	r.Handle("   ")
	assert.Empty(t, out.String())
}

func TestREPL_PrintsPageAfterNavigation(t *testing.T) {
	r, in, out := newREPL(t)

	r.Handle("goto experience")

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Navigating to experience section...\n"))
	assert.Contains(t, text, "Staff Engineer")

	// Same page again prints no markdown
	out.Reset()
	r.Handle("goto experience")
	assert.Equal(t, "Navigating to experience section...\n", out.String())
	assert.Equal(t, []string{"goto experience", "goto experience"}, in.HistoryEntries())

	// External profiles leave the page alone
	out.Reset()
	r.Handle("open github")
	assert.Equal(t, "Opening GitHub profile...\n", out.String())
}

func TestREPL_DrainsEventsAndReloads(t *testing.T) {
	nav := navigation.New(navigation.Options{OpenURL: func(string) error { return nil }})
	in := newInterpreter(nav)
	reloads := make(chan content.Reload, 2)
	var out bytes.Buffer
	r := NewREPL(REPLOptions{Interpreter: in, Pages: nav, Reloads: reloads, Out: &out})

	r.Notify(download.Event{Source: "resume.pdf", Err: errors.New("disk full")})
	reloads <- content.Reload{Err: errors.New("bad toml")}
	r.drain()

	// select picks among ready channels at random
	assert.Contains(t, out.String(), "Download failed: disk full\n")
	assert.Contains(t, out.String(), "Content reload failed: bad toml\n")

	cat, err := content.Parse(strings.Replace(testCatalog, `user = "visitor"`, `user = "guest"`, 1))
	require.NoError(t, err)
	reloads <- content.Reload{Catalog: cat}
	close(reloads)
	r.drain()
	assert.Same(t, cat, in.Context().Content)

	out.Reset()
	r.Handle("whoami")
	assert.Equal(t, "guest@portfolio\n", out.String())
}

func TestREPL_NotifyDropsWhenFull(t *testing.T) {
	r, _, _ := newREPL(t)
	for i := 0; i < eventBuffer+3; i++ {
		r.Notify(download.Event{Source: "x"})
	}
	assert.Len(t, r.events, eventBuffer)
}

func TestREPL_Complete(t *testing.T) {
	r, in, out := newREPL(t)

	assert.Equal(t, []string{"whoami"}, r.complete("wh"))
	assert.Empty(t, in.Lines(), "a unique match leaves the log alone")

	assert.Equal(t, []string{"education", "experience", "echo"}, r.complete("e"))
	assert.Equal(t, []commands.OutputLine{
		{Text: "visitor@portfolio:~$ e", Kind: commands.KindCommand},
		{Text: "Possible completions: education, experience, echo", Kind: commands.KindResponse},
	}, in.Lines())

	assert.Nil(t, r.complete("goto pro"))
	assert.Empty(t, r.complete("zzz"))

	// liner already listed the candidates
	r.Handle("pwd")
	assert.Equal(t, "/home/alex/portfolio\n", out.String())
}

const testCatalog = `
[identity]
user = "visitor"
host = "portfolio"

[commands]
about = "about"
skills = "skills"
experience = "experience"
education = "education"
projects = "projects"
blog = "blog"
contact = "contact"
resume = "resume"
ls = "ls"
`
