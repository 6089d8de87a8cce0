// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the simulated terminal command interpreter.
package commands

import (
	"strings"
)

// dateLayout mirrors the output of date(1).
const dateLayout = "Mon Jan _2 15:04:05 MST 2006"

// =============================================================================
// TERMINAL COMMANDS
// =============================================================================

// HandleClear empties the output log.
func HandleClear(ctx *Context, args []string) Result {
	return Result{}.WithEffect(Effect{Kind: EffectClearOutput})
}

// HandleEcho prints its arguments joined by single spaces.
func HandleEcho(ctx *Context, args []string) Result {
	return Text(strings.Join(args, " "))
}

// HandleDate prints the current time.
func HandleDate(ctx *Context, args []string) Result {
	return Text(ctx.now().Format(dateLayout))
}

// HandleWhoami prints the visitor identity.
func HandleWhoami(ctx *Context, args []string) Result {
	id := ctx.Catalog().Identity
	return Text(id.User + "@" + id.Host)
}

// HandlePwd prints the simulated working directory.
func HandlePwd(ctx *Context, args []string) Result {
	return Text(ctx.Catalog().Identity.Home)
}

// HandleTheme requests a light/dark toggle.
func HandleTheme(ctx *Context, args []string) Result {
	effect := Effect{Kind: EffectToggleTheme}
	if ctx == nil || ctx.Theme == nil {
		return Text("Theme toggled! You can also use Ctrl+T to switch themes.").WithEffect(effect)
	}

	next := "light"
	if ctx.Theme.Current() == "light" {
		next = "dark"
	}
	return Textf("Theme switched to %s mode. You can also use Ctrl+T to switch themes.", next).WithEffect(effect)
}

// =============================================================================
// PORTFOLIO COMMANDS
// =============================================================================

// staticHandler prints the catalog text stored under key.
func staticHandler(key string) Handler {
	return HandlerFunc(func(ctx *Context, args []string) Result {
		return Text(ctx.Catalog().Command(key))
	})
}

// NoResumeText is printed by resume when the catalog has no resume file.
const NoResumeText = "No resume file is available for download yet. Try 'contact' to request a copy."

// HandleResume prints the resume text and requests the download.
func HandleResume(ctx *Context, args []string) Result {
	cat := ctx.Catalog()
	if cat.ResumePath() == "" {
		return Text(NoResumeText)
	}
	return Text(cat.Command("resume")).WithEffect(Effect{
		Kind:          EffectDownload,
		Path:          cat.ResumePath(),
		SuggestedName: cat.Resume.SuggestedName,
	})
}

// =============================================================================
// NAVIGATION COMMANDS
// =============================================================================

// HandleOpen opens a listing page or an external profile.
func HandleOpen(ctx *Context, args []string) Result {
	target := firstArg(args)
	if target == "" || !openTargetArg.Accepts(target) {
		return Errorf("Unknown section: %s. Try 'open projects', 'open blog', 'open github', or 'open linkedin'.", displayArg(target))
	}

	switch target {
	case "github":
		return Text("Opening GitHub profile...").
			WithEffect(navigate(target, TargetExternal))
	case "linkedin":
		return Text("Opening LinkedIn profile...").
			WithEffect(navigate(target, TargetExternal))
	default:
		return Textf("Opening %s page...", target).
			WithEffect(navigate(target, TargetPage))
	}
}

// HandleGoto scrolls to a section of the home page.
func HandleGoto(ctx *Context, args []string) Result {
	section := firstArg(args)
	if section == "" || !gotoSectionArg.Accepts(section) {
		return Errorf("Section '%s' not found. Try: %s", displayArg(section), strings.Join(GotoSections, ", "))
	}
	return Textf("Navigating to %s section...", section).
		WithEffect(navigate(section, TargetSection))
}

func navigate(name string, kind TargetKind) Effect {
	return Effect{Kind: EffectNavigate, Target: Target{Name: name, Kind: kind}}
}

// firstArg returns the lower-cased first argument, or "".
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.ToLower(args[0])
}

func displayArg(arg string) string {
	if arg == "" {
		return "(none)"
	}
	return arg
}

// =============================================================================
// HELP TEXT GENERATION
// =============================================================================

// helpHandler lists the commands of r.
func helpHandler(r *Registry) Handler {
	return HandlerFunc(func(ctx *Context, args []string) Result {
		return Text(GenerateHelpText(r))
	})
}

// GenerateHelpText generates the help listing for all visible commands.
func GenerateHelpText(r *Registry) string {
	var sb strings.Builder

	sb.WriteString("Available commands:\n")

	categories := r.ByCategory()
	for _, category := range categoryOrder {
		cmds, ok := categories[category]
		if !ok || len(cmds) == 0 {
			continue
		}

		sb.WriteString("\n" + category + "\n")
		for _, cmd := range cmds {
			name := cmd.Name
			if cmd.Usage != "" {
				name = cmd.Usage
			}
			sb.WriteString("• " + name + " - " + cmd.Description + "\n")
		}
	}

	sb.WriteString("\nUse Ctrl+T to quickly toggle theme. Tab completes commands, Up/Down browses history.")
	return sb.String()
}
