// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jeranaias/termfolio/internal/commands"
)

// maxLineBytes bounds a single stdin line in run mode.
const maxLineBytes = 64 * 1024

// RunLines submits each line in order and writes the output to out.
// It returns the number of error lines printed.
func RunLines(in *commands.Interpreter, lines []string, out io.Writer) int {
	p := &printer{out: out}
	for _, line := range lines {
		in.Submit(line)
		p.flush(in)
	}
	return p.errors
}

// ReadLines reads every line from r.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

// RunInput returns the lines run mode should execute: the arguments when
// given, otherwise stdin when it is not a terminal.
func RunInput(args Args, stdin io.Reader, stdinIsTTY bool) ([]string, error) {
	if len(args.Raw) > 0 {
		return args.Raw, nil
	}
	if stdinIsTTY {
		return nil, fmt.Errorf("%w: run needs command lines as arguments or on stdin", ErrUsage)
	}
	return ReadLines(stdin)
}
