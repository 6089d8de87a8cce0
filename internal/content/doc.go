// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content provides the portfolio text served by the terminal commands.
//
// A Catalog is a TOML document with an identity (shell user, host, home
// directory, welcome banner), per-command text, markdown pages for each
// section, external links and the resume location. A catalog is embedded in
// the binary and returned by Default; Load reads one from disk.
//
// # Usage
//
//	cat, err := content.Load("portfolio.toml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cat.Command("about"))
//
// Watch a catalog for edits:
//
//	w, err := content.NewWatcher(path, content.DefaultDebounce, log)
//	for reload := range w.Start(ctx) {
//	    if reload.Err == nil {
//	        use(reload.Catalog)
//	    }
//	}
package content
