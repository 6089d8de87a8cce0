// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import "github.com/jeranaias/termfolio/internal/commands"

// surface records the interpreter's rendering requests until the next view
// sync. It is only touched from Update.
type surface struct {
	visible bool
	follow  bool
}

var _ commands.Surface = (*surface)(nil)

func (s *surface) SetVisible(visible bool) {
	s.visible = visible
}

func (s *surface) ScrollToEnd() {
	s.follow = true
}

// takeFollow reports and clears a pending scroll request.
func (s *surface) takeFollow() bool {
	f := s.follow
	s.follow = false
	return f
}
