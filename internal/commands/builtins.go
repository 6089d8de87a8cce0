// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
package commands

// Help categories, in display order.
const (
	CategoryPortfolio  = "Portfolio"
	CategoryNavigation = "Navigation"
	CategoryTerminal   = "Terminal"
)

var categoryOrder = []string{CategoryPortfolio, CategoryNavigation, CategoryTerminal}

// Destinations accepted by goto and open.
var (
	GotoSections = []string{"about", "experience", "projects", "blog", "resume", "contact", "education"}
	OpenTargets  = []string{"projects", "blog", "github", "linkedin"}
)

var (
	openTargetArg = ArgDef{
		Name:        "target",
		Required:    true,
		Values:      OpenTargets,
		Description: "Page or profile to open",
	}
	gotoSectionArg = ArgDef{
		Name:        "section",
		Required:    true,
		Values:      GotoSections,
		Description: "Section to scroll to",
	}
)

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

// Builtins returns the built-in command set. help lists the commands of r.
func Builtins(r *Registry) []*Command {
	return []*Command{
		{
			Name:        "help",
			Description: "Show available commands",
			Category:    CategoryTerminal,
			Handler:     helpHandler(r),
		},
		{
			Name:        "theme",
			Description: "Toggle between light/dark themes",
			Category:    CategoryTerminal,
			Handler:     HandlerFunc(HandleTheme),
		},
		{
			Name:        "about",
			Description: "Show information about me",
			Category:    CategoryPortfolio,
			Handler:     staticHandler("about"),
		},
		{
			Name:        "skills",
			Description: "Display technical skills",
			Category:    CategoryPortfolio,
			Handler:     staticHandler("skills"),
		},
		{
			Name:        "projects",
			Description: "Browse my projects",
			Category:    CategoryPortfolio,
			Handler:     staticHandler("projects"),
		},
		{
			Name:        "blog",
			Description: "Read my blog posts",
			Category:    CategoryPortfolio,
			Handler:     staticHandler("blog"),
		},
		{
			Name:        "contact",
			Description: "Get my contact information",
			Category:    CategoryPortfolio,
			Handler:     staticHandler("contact"),
		},
		{
			Name:        "education",
			Description: "Show educational background",
			Category:    CategoryPortfolio,
			Handler:     staticHandler("education"),
		},
		{
			Name:        "experience",
			Description: "View work experience",
			Category:    CategoryPortfolio,
			Handler:     staticHandler("experience"),
		},
		{
			Name:        "resume",
			Description: "Download my resume",
			Category:    CategoryPortfolio,
			Handler:     HandlerFunc(HandleResume),
		},
		{
			Name:        "open",
			Description: "Open a page or profile",
			Usage:       "open <projects|blog|github|linkedin>",
			Args:        []ArgDef{openTargetArg},
			Category: CategoryNavigation,
			Handler:  HandlerFunc(HandleOpen),
		},
		{
			Name:        "goto",
			Description: "Navigate to a section",
			Usage:       "goto <section>",
			Args:        []ArgDef{gotoSectionArg},
			Category: CategoryNavigation,
			Handler:  HandlerFunc(HandleGoto),
		},
		{
			Name:        "clear",
			Description: "Clear terminal output",
			Category:    CategoryTerminal,
			Handler:     HandlerFunc(HandleClear),
		},
		{
			Name:        "date",
			Description: "Show current date",
			Category:    CategoryTerminal,
			Handler:     HandlerFunc(HandleDate),
		},
		{
			Name:        "whoami",
			Description: "Show current user",
			Category:    CategoryTerminal,
			Handler:     HandlerFunc(HandleWhoami),
		},
		{
			Name:        "pwd",
			Description: "Print working directory",
			Category:    CategoryTerminal,
			Handler:     HandlerFunc(HandlePwd),
		},
		{
			Name:        "ls",
			Description: "List directory contents",
			Category:    CategoryTerminal,
			Handler:     staticHandler("ls"),
		},
		{
			Name:        "echo",
			Description: "Display text",
			Usage:       "echo [text...]",
			Args: []ArgDef{
				{Name: "text", Variadic: true, Description: "Words to print"},
			},
			Category: CategoryTerminal,
			Handler:  HandlerFunc(HandleEcho),
		},
	}
}
