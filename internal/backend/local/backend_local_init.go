// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/tripctl/tripctl/internal/log"
)

type BackendLocalOption = func(ctx context.Context, be *BackendLocal) error

// NewBackendLocal returns a BackendLocal object that implements the Backend
// interface. Without options it reads stdin.
func NewBackendLocal(ctx context.Context, options ...BackendLocalOption) (*BackendLocal, error) {
	options = append([]BackendLocalOption{WithDefaults()}, options...)

	be := &BackendLocal{Ctx: ctx}

	for _, opt := range options {
		if err := opt(ctx, be); err != nil {
			return nil, err
		}
	}

	return be, nil
}

func WithDefaults() BackendLocalOption {
	return func(ctx context.Context, be *BackendLocal) error {
		be.Path = Stdin
		be.stdin = os.Stdin
		be.terminal = term.IsTerminal(int(os.Stdin.Fd()))
		return nil
	}
}

// FromPath selects the report file. Relative paths are resolved against the
// working directory. The file must exist and not be a directory.
func FromPath(path string) BackendLocalOption {
	return func(ctx context.Context, be *BackendLocal) error {
		if path == Stdin {
			be.Path = Stdin
			return nil
		}

		// Is path a relative or absolute path?
		if !filepath.IsAbs(path) {
			cwd, _ := os.Getwd()
			path = filepath.Join(cwd, path)
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("report source: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("report source is a directory: %s", path)
		}

		log.Debugf("NewBackendLocal FromPath(): path = %s", path)
		be.Path = path
		return nil
	}
}

// WithStdin replaces standard input. terminal reports whether r is an
// interactive terminal.
func WithStdin(r io.Reader, terminal bool) BackendLocalOption {
	return func(ctx context.Context, be *BackendLocal) error {
		be.stdin = r
		be.terminal = terminal
		return nil
	}
}
