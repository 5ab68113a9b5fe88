// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tripctl/tripctl/internal/config"
	"github.com/tripctl/tripctl/internal/log"
)

type BackendS3Option = func(ctx context.Context, be *BackendS3) error

// NewBackendS3 returns a BackendS3 object that implements the Backend
// interface.
func NewBackendS3(ctx context.Context, options ...BackendS3Option) (*BackendS3, error) {
	be := &BackendS3{Ctx: ctx}

	for _, opt := range options {
		if err := opt(ctx, be); err != nil {
			return nil, err
		}
	}

	if be.Bucket == "" || be.Key == "" {
		return nil, fmt.Errorf("s3 source needs a bucket and a key: %s", be)
	}

	return be, nil
}

// FromURL parses s3://bucket/key[?versionId=id].
func FromURL(raw string) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("bad s3 source: %w", err)
		}
		if u.Scheme != "s3" {
			return fmt.Errorf("bad s3 source: scheme %q", u.Scheme)
		}

		be.Bucket = u.Host
		be.Key = strings.TrimPrefix(u.Path, "/")
		be.VersionID = u.Query().Get("versionId")

		log.Debugf("NewBackendS3 FromURL(): bucket=%s key=%s version=%s", be.Bucket, be.Key, be.VersionID)
		return nil
	}
}

// WithConfig applies the s3.region, s3.profile and s3.endpoint config keys.
// Values already set are kept.
func WithConfig() BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		if be.Region == "" {
			be.Region, _ = config.GetString("s3.region", "")
		}
		if be.Profile == "" {
			be.Profile, _ = config.GetString("s3.profile", "")
		}
		if be.Endpoint == "" {
			be.Endpoint, _ = config.GetString("s3.endpoint", "")
		}
		return nil
	}
}

func WithRegion(region string) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		be.Region = region
		return nil
	}
}

func WithProfile(profile string) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		be.Profile = profile
		return nil
	}
}

func WithEndpoint(endpoint string) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		be.Endpoint = endpoint
		return nil
	}
}

// WithClient replaces the SDK client.
func WithClient(client GetObjectAPI) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		be.client = client
		return nil
	}
}
