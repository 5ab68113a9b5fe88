// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tripctl/tripctl/internal/backend/local"
	"github.com/tripctl/tripctl/internal/backend/s3"
	"github.com/tripctl/tripctl/internal/log"
)

// ErrUnknownScheme is returned for a source URL tripctl cannot read.
var ErrUnknownScheme = errors.New("unknown source scheme")

// Backend abstracts where a report document comes from.
type Backend interface {
	// Body returns the complete report document.
	Body() ([]byte, error)
	String() string
	Type() string
}

// NewBackend returns the Backend for source. An empty source or "-" reads
// stdin, "s3://bucket/key" reads an S3 object, "file://path" or a bare path
// reads a local file.
func NewBackend(ctx context.Context, source string) (Backend, error) {
	scheme, rest, found := strings.Cut(source, "://")
	if !found {
		scheme, rest = "file", source
	}
	log.Debugf("NewBackend: scheme=%s rest=%s", scheme, rest)

	switch strings.ToLower(scheme) {
	case "file":
		if rest == "" {
			rest = "-"
		}
		return local.NewBackendLocal(ctx, local.FromPath(rest))
	case "s3":
		return s3.NewBackendS3(ctx,
			s3.FromURL(source),
			s3.WithConfig(),
		)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}
}
