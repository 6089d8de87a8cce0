// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// OUTPUT PRINTER
// =============================================================================

// printer writes the interpreter's new output lines to a stream.
// Command echoes are skipped: the line editor already shows what was typed.
type printer struct {
	out     io.Writer
	printed int
	errors  int

	// onClear is called when the output log was cleared since the last flush
	onClear func()
}

// flush prints every line added since the previous flush.
func (p *printer) flush(in *commands.Interpreter) {
	if in.OutputLen() < p.printed {
		p.printed = 0
		if p.onClear != nil {
			p.onClear()
		}
	}

	theme := styles.NewTheme()
	for _, line := range in.LinesSince(p.printed) {
		if line.Kind == commands.KindCommand {
			continue
		}
		if line.Kind == commands.KindError {
			p.errors++
		}
		fmt.Fprintln(p.out, theme.RenderLine(line, in.Prompt()))
	}
	p.printed = in.OutputLen()
}

// skip marks every current line as printed.
func (p *printer) skip(in *commands.Interpreter) {
	p.printed = in.OutputLen()
}

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// renderMarkdown renders page markdown for terminal display.
// Returns the original content if rendering fails.
func renderMarkdown(content, style string, width int) string {
	if !ColorsEnabled() {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}
