// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tripctl/tripctl/internal/log"
)

// ErrTerminalStdin is returned when rows would be read from an interactive
// terminal.
var ErrTerminalStdin = errors.New("stdin is a terminal; pass a report file or pipe one in")

// Stdin is the path that selects standard input.
const Stdin = "-"

// BackendLocal reads a report from a local file or stdin.
type BackendLocal struct {
	Ctx  context.Context
	Path string

	stdin    io.Reader
	terminal bool
}

// Body implements backend.Backend.
func (be *BackendLocal) Body() ([]byte, error) {
	if be.Path != Stdin {
		body, err := os.ReadFile(be.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read report file: %w", err)
		}
		log.Debugf("read %d bytes from %s", len(body), be.Path)
		return body, nil
	}

	if be.terminal {
		return nil, ErrTerminalStdin
	}

	body, err := io.ReadAll(be.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read report from stdin: %w", err)
	}
	log.Debugf("read %d bytes from stdin", len(body))
	return body, nil
}

// String implements backend.Backend.
func (be *BackendLocal) String() string {
	if be.Path == Stdin {
		return "stdin"
	}
	return be.Path
}

// Type implements backend.Backend.
func (be *BackendLocal) Type() string {
	return "local"
}
