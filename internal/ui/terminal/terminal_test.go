// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/download"
	"github.com/jeranaias/termfolio/internal/navigation"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeThemes struct {
	name    string
	toggles int
}

func (f *fakeThemes) Current() string { return f.name }

func (f *fakeThemes) Toggle() string {
	f.toggles++
	if f.name == "dark" {
		f.name = "light"
	} else {
		f.name = "dark"
	}
	return f.name
}

type fixture struct {
	model  Model
	in     *commands.Interpreter
	themes *fakeThemes
	nav    *navigation.Navigator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	themes := &fakeThemes{name: "dark"}
	nav := navigation.New(navigation.Options{OpenURL: func(string) error { return nil }})
	in := commands.New(commands.NewDefaultRegistry(), &commands.Context{
		Theme:     themes,
		Navigator: nav,
	})

	m := New(Options{Interpreter: in, Themes: themes, Pages: nav})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return &fixture{model: m, in: in, themes: themes, nav: nav}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update must return a terminal.Model")
	return model
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func submit(t *testing.T, m Model, line string) Model {
	t.Helper()
	m = typeText(t, m, line)
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func lastLine(in *commands.Interpreter) commands.OutputLine {
	lines := in.Lines()
	if len(lines) == 0 {
		return commands.OutputLine{}
	}
	return lines[len(lines)-1]
}

// =============================================================================
// INPUT
// =============================================================================

func TestSubmit_RunsLineAndClearsInput(t *testing.T) {
	f := newFixture(t)

	m := submit(t, f.model, "whoami")

	assert.Empty(t, m.input.Value())
	assert.True(t, m.surface.visible)
	lines := f.in.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, commands.OutputLine{Text: "visitor@portfolio:~$ whoami", Kind: commands.KindCommand}, lines[0])
	assert.Equal(t, commands.OutputLine{Text: "visitor@portfolio", Kind: commands.KindResponse}, lines[1])
	assert.Contains(t, m.View(), "visitor@portfolio")
}

func TestSubmit_BlankLineIgnored(t *testing.T) {
	f := newFixture(t)

	m := submit(t, f.model, "   ")

	assert.Empty(t, f.in.Lines())
	assert.False(t, m.surface.visible)
}

func TestHistoryKeys(t *testing.T) {
	f := newFixture(t)
	m := submit(t, f.model, "pwd")
	m = submit(t, m, "date")

	assert.NotContains(t, m.View(), "history ")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "date", m.input.Value())
	assert.Contains(t, m.View(), "history 1/2")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pwd", m.input.Value())

	// Nothing older: field unchanged
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pwd", m.input.Value())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "date", m.input.Value())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.input.Value())
	assert.NotContains(t, m.View(), "history ")
}

func TestTabCompletion(t *testing.T) {
	f := newFixture(t)

	m := typeText(t, f.model, "who")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "whoami", m.input.Value())
	assert.Empty(t, f.in.Lines())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "e")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "e", m.input.Value())
	assert.Equal(t, commands.OutputLine{
		Text: "Possible completions: education, experience, echo",
		Kind: commands.KindResponse,
	}, lastLine(f.in))
}

func TestCtrlT_TogglesTheme(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, "dark", f.model.themeName)

	m := send(t, f.model, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, 1, f.themes.toggles)
	assert.Equal(t, "light", m.themeName)
	assert.Empty(t, f.in.Lines(), "the shortcut prints nothing")
}

func TestThemeCommand_RebuildsStyles(t *testing.T) {
	f := newFixture(t)

	m := submit(t, f.model, "theme")

	assert.Equal(t, "light", m.themeName)
	assert.Equal(t, "Theme switched to light mode. You can also use Ctrl+T to switch themes.", lastLine(f.in).Text)
}

func TestCtrlL_ClearsOutput(t *testing.T) {
	f := newFixture(t)
	m := submit(t, f.model, "echo hi")
	require.True(t, m.surface.visible)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Empty(t, f.in.Lines())
	assert.False(t, m.surface.visible)
	assert.Equal(t, []string{"clear", "echo hi"}, f.in.HistoryEntries())
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		f := newFixture(t)
		_, cmd := f.model.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.Equal(t, tea.Quit(), cmd(), msg.String())
	}
}

// =============================================================================
// HOST MESSAGES
// =============================================================================

func TestWelcomeMsg(t *testing.T) {
	f := newFixture(t)

	m := send(t, f.model, WelcomeMsg{})

	id := content.Default().Identity
	assert.Equal(t, []commands.OutputLine{
		{Text: id.Welcome, Kind: commands.KindSuccess},
		{Text: id.Hint, Kind: commands.KindResponse},
	}, f.in.Lines())
	assert.True(t, m.surface.visible)
	assert.Empty(t, f.in.HistoryEntries())
}

func TestInit_ImmediateWelcome(t *testing.T) {
	in := commands.New(commands.NewDefaultRegistry(), nil)
	m := New(Options{Interpreter: in})
	assert.NotNil(t, m.Init())
}

func TestDownloadMsg(t *testing.T) {
	f := newFixture(t)

	m := send(t, f.model, DownloadMsg{Event: download.Event{Source: "resume.pdf", Destination: "/tmp/r.pdf", Bytes: 2048}})
	assert.Equal(t, commands.KindSuccess, lastLine(f.in).Kind)
	assert.Contains(t, lastLine(f.in).Text, "/tmp/r.pdf")

	send(t, m, DownloadMsg{Event: download.Event{Source: "resume.pdf", Err: download.ErrRateLimited}})
	assert.Equal(t, commands.KindError, lastLine(f.in).Kind)
}

func TestContentReloadMsg(t *testing.T) {
	f := newFixture(t)

	cat, err := content.Parse(strings.Replace(minimalCatalog, `user = "visitor"`, `user = "guest"`, 1))
	require.NoError(t, err)

	m := send(t, f.model, ContentReloadMsg{Reload: content.Reload{Catalog: cat}})
	assert.Same(t, cat, f.in.Context().Content)

	m = submit(t, m, "whoami")
	assert.Equal(t, "guest@portfolio", lastLine(f.in).Text)

	send(t, m, ContentReloadMsg{Reload: content.Reload{Err: errors.New("bad toml")}})
	assert.Same(t, cat, f.in.Context().Content, "failed reloads keep the old catalog")
	assert.Equal(t, commands.OutputLine{Text: "Content reload failed: bad toml", Kind: commands.KindError}, lastLine(f.in))
}

func TestWaitForReload(t *testing.T) {
	assert.Nil(t, waitForReload(nil))

	ch := make(chan content.Reload, 1)
	ch <- content.Reload{Err: errors.New("x")}
	cmd := waitForReload(ch)
	msg, ok := cmd().(ContentReloadMsg)
	require.True(t, ok)
	assert.EqualError(t, msg.Reload.Err, "x")

	close(ch)
	assert.Equal(t, reloadsClosedMsg{}, cmd())
}

// =============================================================================
// PAGES AND LAYOUT
// =============================================================================

func TestNavigation_UpdatesPagePane(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, navigation.Home, f.model.pageName)

	m := submit(t, f.model, "open projects")
	assert.Equal(t, "projects", m.pageName)

	m = submit(t, m, "goto contact")
	assert.Equal(t, "contact", m.pageName)
	assert.Contains(t, m.View(), "contact")
}

func TestView_Layouts(t *testing.T) {
	f := newFixture(t)
	m := submit(t, f.model, "help")

	for _, size := range []tea.WindowSizeMsg{
		{Width: 40, Height: 12},
		{Width: 80, Height: 24},
		{Width: 160, Height: 50},
		{Width: 1, Height: 1},
	} {
		m = send(t, m, size)
		view := m.View()
		assert.NotEmpty(t, view, "%dx%d", size.Width, size.Height)
	}
}

func TestSurfaceFollow(t *testing.T) {
	s := &surface{}
	assert.False(t, s.takeFollow())
	s.ScrollToEnd()
	assert.True(t, s.takeFollow())
	assert.False(t, s.takeFollow())
}

const minimalCatalog = `
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

// =============================================================================
// PROGRAM
// =============================================================================

func TestProgram_RepeatedResumeStaysResponsive(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4"), 0o644))
	cat, err := content.Parse(fmt.Sprintf("%s\n[resume]\npath = %q\n", minimalCatalog, src))
	require.NoError(t, err)

	themes := &fakeThemes{name: "dark"}
	nav := navigation.New(navigation.Options{OpenURL: func(string) error { return nil }})

	var p *tea.Program
	downloads := download.New(download.Options{
		Dir:         filepath.Join(dir, "Downloads"),
		MinInterval: time.Hour,
		Notify: func(ev download.Event) {
			p.Send(DownloadMsg{Event: ev})
		},
	})
	in := commands.New(commands.NewDefaultRegistry(), &commands.Context{
		Content:    cat,
		Theme:      themes,
		Navigator:  nav,
		Downloader: downloads,
	})

	p = tea.NewProgram(
		New(Options{Interpreter: in, Themes: themes, Pages: nav}),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)

	type result struct {
		model tea.Model
		err   error
	}
	done := make(chan result, 1)
	go func() {
		m, err := p.Run()
		done <- result{m, err}
	}()

	sent := make(chan struct{})
	go func() {
		defer close(sent)
		p.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
		for i := 0; i < 2; i++ {
			p.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("resume")})
			p.Send(tea.KeyMsg{Type: tea.KeyEnter})
		}
		p.Quit()
	}()

	var res result
	select {
	case res = <-done:
	case <-time.After(3 * time.Second):
		p.Kill()
		t.Fatal("program stopped processing messages after a rate-limited download")
	}
	<-sent
	downloads.Wait()

	require.NoError(t, res.err)
	final, ok := res.model.(Model)
	require.True(t, ok)

	var echoes int
	for _, line := range final.in.Lines() {
		if line.Kind == commands.KindCommand && strings.HasSuffix(line.Text, "$ resume") {
			echoes++
		}
	}
	assert.Equal(t, 2, echoes)
}
