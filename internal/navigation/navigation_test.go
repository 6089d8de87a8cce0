// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/content"
)

type recorder struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (r *recorder) open(url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return r.err
}

func (r *recorder) opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

func TestNavigateTo_Section(t *testing.T) {
	rec := &recorder{}
	n := New(Options{OpenURL: rec.open})

	assert.Equal(t, commands.Target{Name: Home, Kind: commands.TargetSection}, n.Current())

	var seen []commands.Target
	n.OnNavigate(func(target commands.Target) { seen = append(seen, target) })

	n.NavigateTo(commands.Target{Name: "experience", Kind: commands.TargetSection})
	n.NavigateTo(commands.Target{Name: "blog", Kind: commands.TargetPage})

	assert.Equal(t, commands.Target{Name: "blog", Kind: commands.TargetPage}, n.Current())
	assert.Len(t, seen, 2)
	assert.Empty(t, rec.opened())
}

func TestNavigateTo_External(t *testing.T) {
	rec := &recorder{}
	n := New(Options{OpenURL: rec.open})

	var notified bool
	n.OnNavigate(func(commands.Target) { notified = true })

	n.NavigateTo(commands.Target{Name: "github", Kind: commands.TargetExternal})
	n.NavigateTo(commands.Target{Name: "linkedin", Kind: commands.TargetExternal})
	n.Wait()

	assert.ElementsMatch(t, []string{
		"https://github.com/alexdoe",
		"https://linkedin.com/in/alexdoe",
	}, rec.opened())
	assert.False(t, notified)
	assert.Equal(t, Home, n.Current().Name)
}

func TestNavigateTo_ExternalFailureIsSwallowed(t *testing.T) {
	rec := &recorder{err: errors.New("no browser")}
	n := New(Options{OpenURL: rec.open})

	assert.NotPanics(t, func() {
		n.NavigateTo(commands.Target{Name: "github", Kind: commands.TargetExternal})
		n.Wait()
	})
	assert.Len(t, rec.opened(), 1)
}

func TestNavigateTo_ExternalWithoutLink(t *testing.T) {
	rec := &recorder{}
	cat, err := content.Parse(`
[commands]
about = "a"
skills = "s"
experience = "e"
education = "e"
projects = "p"
blog = "b"
contact = "c"
resume = "r"
ls = "l"
`)
	require.NoError(t, err)

	n := New(Options{Catalog: cat, OpenURL: rec.open})
	n.NavigateTo(commands.Target{Name: "github", Kind: commands.TargetExternal})
	n.Wait()
	assert.Empty(t, rec.opened())
}

func TestSetCatalog(t *testing.T) {
	rec := &recorder{}
	n := New(Options{OpenURL: rec.open})

	cat, err := content.Parse(`
[links]
github = "https://github.com/someone-else"

[commands]
about = "a"
skills = "s"
experience = "e"
education = "e"
projects = "p"
blog = "b"
contact = "c"
resume = "r"
ls = "l"
`)
	require.NoError(t, err)

	n.SetCatalog(nil)
	n.SetCatalog(cat)
	n.NavigateTo(commands.Target{Name: "github", Kind: commands.TargetExternal})
	n.Wait()
	assert.Equal(t, []string{"https://github.com/someone-else"}, rec.opened())
}

func TestInterpreterIntegration(t *testing.T) {
	rec := &recorder{}
	n := New(Options{OpenURL: rec.open})
	in := commands.New(commands.NewDefaultRegistry(), &commands.Context{Navigator: n})

	in.Submit("goto contact")
	assert.Equal(t, "contact", n.Current().Name)

	in.Submit("goto nowhere")
	assert.Equal(t, "contact", n.Current().Name)

	in.Submit("open github")
	n.Wait()
	assert.Equal(t, []string{"https://github.com/alexdoe"}, rec.opened())
}
