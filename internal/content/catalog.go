// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content provides the portfolio text served by the terminal commands.
package content

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultTOML string

// RequiredCommands lists the catalog keys every built-in static command reads.
var RequiredCommands = []string{
	"about", "skills", "experience", "education",
	"projects", "blog", "contact", "resume", "ls",
}

// =============================================================================
// CATALOG TYPES
// =============================================================================

// Catalog holds the static content of the portfolio.
// A Catalog is read-only once loaded; reloads produce a new value.
type Catalog struct {
	Identity Identity          `toml:"identity"`
	Links    Links             `toml:"links"`
	Resume   Resume            `toml:"resume"`
	Commands map[string]string `toml:"commands"`
	Pages    map[string]string `toml:"pages"`

	// dir is the directory relative paths are resolved against
	dir string

	// source is the file the catalog was loaded from ("" for the built-in one)
	source string
}

// Identity describes the portfolio owner and the simulated shell user.
type Identity struct {
	Name    string `toml:"name"`
	User    string `toml:"user"`
	Host    string `toml:"host"`
	Home    string `toml:"home"`
	Welcome string `toml:"welcome"`
	Hint    string `toml:"hint"`
}

// Links are the external profiles reachable with open.
type Links struct {
	GitHub   string `toml:"github"`
	LinkedIn string `toml:"linkedin"`
}

// Resume locates the downloadable resume file.
type Resume struct {
	Path          string `toml:"path"`
	SuggestedName string `toml:"suggested_name"`
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Command returns the text for a static command, or "" if absent.
func (c *Catalog) Command(name string) string {
	return c.Commands[name]
}

// Page returns the markdown for a page, or "" if absent.
func (c *Catalog) Page(name string) string {
	return c.Pages[name]
}

// Link returns the URL for an external profile name ("github", "linkedin").
func (c *Catalog) Link(name string) string {
	switch strings.ToLower(name) {
	case "github":
		return c.Links.GitHub
	case "linkedin":
		return c.Links.LinkedIn
	default:
		return ""
	}
}

// Whoami returns "user@host".
func (c *Catalog) Whoami() string {
	return c.Identity.User + "@" + c.Identity.Host
}

// Prompt returns the shell prompt derived from the identity.
func (c *Catalog) Prompt() string {
	return c.Whoami() + ":~$"
}

// ResumePath returns the resume location, resolved against the catalog
// directory when relative.
func (c *Catalog) ResumePath() string {
	p := c.Resume.Path
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// Source returns the file the catalog was loaded from, or "" for the
// built-in catalog.
func (c *Catalog) Source() string {
	return c.source
}

// =============================================================================
// LOADING
// =============================================================================

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. The returned value is shared and must
// not be modified.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Parse(defaultTOML)
		if err != nil {
			panic(fmt.Sprintf("content: built-in catalog is invalid: %v", err))
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}

// Parse decodes and validates a catalog from TOML text.
func Parse(data string) (*Catalog, error) {
	var cat Catalog
	if _, err := toml.Decode(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	cat.fillDefaults()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Load reads a catalog from a TOML file. Relative resume paths resolve
// against the file's directory.
func Load(path string) (*Catalog, error) {
	var cat Catalog
	if _, err := toml.DecodeFile(path, &cat); err != nil {
		return nil, fmt.Errorf("failed to load content from %s: %w", path, err)
	}
	cat.fillDefaults()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content in %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cat.source = abs
	cat.dir = filepath.Dir(abs)
	return &cat, nil
}

// LoadOrDefault loads path, or returns the built-in catalog when path is "".
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// fillDefaults fills identity fields a partial file leaves empty.
func (c *Catalog) fillDefaults() {
	if c.Identity.User == "" {
		c.Identity.User = "visitor"
	}
	if c.Identity.Host == "" {
		c.Identity.Host = "portfolio"
	}
	if c.Identity.Home == "" {
		c.Identity.Home = "/home/" + c.Identity.User + "/portfolio"
	}
	if c.Identity.Welcome == "" {
		name := c.Identity.Name
		if name == "" {
			name = "my"
		} else {
			name += "'s"
		}
		c.Identity.Welcome = fmt.Sprintf("Welcome to %s portfolio terminal!", name)
	}
	if c.Identity.Hint == "" {
		c.Identity.Hint = "Type 'help' to see available commands or 'about' to learn more about me."
	}
	if c.Resume.SuggestedName == "" && c.Resume.Path != "" {
		c.Resume.SuggestedName = filepath.Base(c.Resume.Path)
	}
	if c.Pages == nil {
		c.Pages = make(map[string]string)
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one problem with a catalog.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks that every required command text is present and that the
// identity forms a usable prompt.
func (c *Catalog) Validate() error {
	var errs ValidateErrors

	for _, key := range RequiredCommands {
		if strings.TrimSpace(c.Commands[key]) == "" {
			errs = append(errs, ValidationError{
				Field:   "commands." + key,
				Message: "missing text",
			})
		}
	}

	if strings.ContainsAny(c.Identity.User, " \t@") {
		errs = append(errs, ValidationError{
			Field:   "identity.user",
			Message: fmt.Sprintf("invalid user %q, must not contain spaces or '@'", c.Identity.User),
		})
	}
	if strings.ContainsAny(c.Identity.Host, " \t:") {
		errs = append(errs, ValidationError{
			Field:   "identity.host",
			Message: fmt.Sprintf("invalid host %q, must not contain spaces or ':'", c.Identity.Host),
		})
	}

	for name, url := range map[string]string{"links.github": c.Links.GitHub, "links.linkedin": c.Links.LinkedIn} {
		if url != "" && !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
			errs = append(errs, ValidationError{
				Field:   name,
				Message: fmt.Sprintf("invalid URL %q, must start with http:// or https://", url),
			})
		}
	}

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return errs
	}
	return nil
}
