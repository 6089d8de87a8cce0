// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler executes a command. Implementations return text and effects; they
// must not mutate the interpreter.
type Handler interface {
	Execute(ctx *Context, args []string) Result
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx *Context, args []string) Result

// Execute calls f(ctx, args).
func (f HandlerFunc) Execute(ctx *Context, args []string) Result {
	return f(ctx, args)
}

// Command describes a registered command.
type Command struct {
	// Name is the command name as typed (e.g., "help")
	Name string

	// Description is shown in help listings
	Description string

	// Usage shows argument syntax (e.g., "goto <section>")
	Usage string

	// Args defines the accepted arguments
	Args []ArgDef

	// Handler executes the command
	Handler Handler

	// Hidden commands don't appear in help
	Hidden bool

	// Category for grouping in help display
	Category string
}

// ArgDef defines an argument for a command.
type ArgDef struct {
	// Name of the argument
	Name string

	// Required indicates if the argument must be provided
	Required bool

	// Variadic arguments absorb every remaining token
	Variadic bool

	// Values lists the accepted values, if the argument is an enumeration
	Values []string

	// Description explains the argument
	Description string
}

// Accepts reports whether value is one of the enumerated values
// (case-insensitive). Free-form arguments accept anything.
func (a ArgDef) Accepts(value string) bool {
	if len(a.Values) == 0 {
		return true
	}
	for _, v := range a.Values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// =============================================================================
// REGISTRATION ERRORS
// =============================================================================

var (
	// ErrEmptyName is returned when a command has no name.
	ErrEmptyName = errors.New("command name is empty")

	// ErrInvalidName is returned when a command name contains whitespace.
	ErrInvalidName = errors.New("command name contains whitespace")

	// ErrNilHandler is returned when a command has no handler.
	ErrNilHandler = errors.New("command handler is nil")

	// ErrInvalidArgs is returned when a command's argument list is malformed.
	ErrInvalidArgs = errors.New("invalid argument definition")

	// ErrDuplicate is returned when a name is already registered.
	ErrDuplicate = errors.New("command already registered")

	// ErrSealed is returned when registering after the registry was sealed.
	ErrSealed = errors.New("registry is sealed")
)

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands.
// Names are unique and compared case-insensitively. Once sealed the registry
// is immutable for the rest of the session.
type Registry struct {
	commands map[string]*Command
	order    []*Command
	sealed   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// NewDefaultRegistry creates a sealed registry with all built-in commands.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(Builtins(r)...)
	r.Seal()
	return r
}

// Register validates and adds a command to the registry.
func (r *Registry) Register(cmd *Command) error {
	if r.sealed {
		return ErrSealed
	}
	if cmd == nil || cmd.Name == "" {
		return ErrEmptyName
	}
	if strings.IndexFunc(cmd.Name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidName, cmd.Name)
	}
	if cmd.Handler == nil {
		return fmt.Errorf("%w: %s", ErrNilHandler, cmd.Name)
	}
	if err := validateArgs(cmd.Args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgs, cmd.Name, err)
	}

	key := foldName(cmd.Name)
	if _, exists := r.commands[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, cmd.Name)
	}

	r.commands[key] = cmd
	r.order = append(r.order, cmd)
	return nil
}

// validateArgs checks that arguments are named, that only the last one is
// variadic and that no required argument follows an optional one.
func validateArgs(args []ArgDef) error {
	optional := false
	for i, arg := range args {
		if arg.Name == "" {
			return fmt.Errorf("argument %d has no name", i)
		}
		if arg.Variadic && i != len(args)-1 {
			return fmt.Errorf("variadic argument %q must be last", arg.Name)
		}
		if arg.Required && optional {
			return fmt.Errorf("required argument %q follows an optional one", arg.Name)
		}
		if !arg.Required {
			optional = true
		}
	}
	return nil
}

// MustRegister registers every command and panics on the first error.
// Intended for startup wiring only.
func (r *Registry) MustRegister(cmds ...*Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(fmt.Sprintf("commands: %v", err))
		}
	}
}

// Seal makes the registry immutable.
func (r *Registry) Seal() {
	r.sealed = true
}

// Get retrieves a command by name, ignoring case. Returns nil if not found.
func (r *Registry) Get(name string) *Command {
	return r.commands[foldName(name)]
}

// Matches returns the names that start with prefix (case-insensitive),
// in registration order.
func (r *Registry) Matches(prefix string) []string {
	prefix = foldName(prefix)
	var matches []string
	for _, cmd := range r.order {
		if strings.HasPrefix(foldName(cmd.Name), prefix) {
			matches = append(matches, cmd.Name)
		}
	}
	return matches
}

// ByCategory returns visible commands grouped by category, each group in
// registration order.
func (r *Registry) ByCategory() map[string][]*Command {
	result := make(map[string][]*Command)
	for _, cmd := range r.order {
		if cmd.Hidden {
			continue
		}
		category := cmd.Category
		if category == "" {
			category = CategoryTerminal
		}
		result[category] = append(result[category], cmd)
	}
	return result
}

// foldName normalizes a command name for case-insensitive comparison.
func foldName(name string) string {
	return cases.Fold().String(name)
}
