// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// minPageWidth is the narrowest wrap width handed to glamour.
const minPageWidth = 20

// =============================================================================
// PAGE RENDERER
// =============================================================================

// pageRenderer renders page markdown with glamour. The underlying renderer is
// rebuilt lazily whenever the style or wrap width changes.
type pageRenderer struct {
	style string
	width int
	log   *zap.SugaredLogger

	renderer *glamour.TermRenderer
}

func newPageRenderer(style string, log *zap.SugaredLogger) *pageRenderer {
	return &pageRenderer{style: style, width: 80, log: log}
}

// configure sets the glamour standard style and the wrap width.
func (p *pageRenderer) configure(style string, width int) {
	if width < minPageWidth {
		width = minPageWidth
	}
	if style == p.style && width == p.width {
		return
	}
	p.style = style
	p.width = width
	p.renderer = nil
}

// render returns markdown rendered for the terminal. Rendering failures fall
// back to the raw markdown.
func (p *pageRenderer) render(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}

	if p.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(p.style),
			glamour.WithWordWrap(p.width),
		)
		if err != nil {
			p.log.Warnw("failed to create page renderer", "style", p.style, "error", err)
			return markdown
		}
		p.renderer = r
	}

	out, err := p.renderer.Render(markdown)
	if err != nil {
		p.log.Warnw("failed to render page", "error", err)
		return markdown
	}
	return strings.Trim(out, "\n")
}
