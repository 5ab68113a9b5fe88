// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tripctl/tripctl/internal/log"
)

// DefaultMaxAttempts bounds the retries of a single report read.
const DefaultMaxAttempts = 3

// Settings are the knobs of the S3 client used to read report objects. The
// zero value inherits the shell's AWS setup (AWS_PROFILE, shared config, env,
// IMDS) and the SDK's endpoint.
type Settings struct {
	Profile     string
	Region      string
	Endpoint    string
	MaxAttempts int
}

// Option customizes Settings.
type Option func(*Settings)

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(s *Settings) { s.Profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(s *Settings) { s.Region = region }
}

// WithEndpoint points the client at an S3 compatible store such as MinIO.
func WithEndpoint(url string) Option {
	return func(s *Settings) { s.Endpoint = url }
}

// WithMaxAttempts sets how many times a request is tried. Values below 1
// keep DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(s *Settings) { s.MaxAttempts = n }
}

// NewSettings applies opts over the defaults.
func NewSettings(opts ...Option) Settings {
	s := Settings{MaxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&s)
	}
	if s.MaxAttempts < 1 {
		s.MaxAttempts = DefaultMaxAttempts
	}
	return s
}

// LoadAWSConfig loads the SDK config for s.
func LoadAWSConfig(ctx context.Context, s Settings) (awsv2.Config, error) {
	log.Debugf("aws settings: profile=%s, region=%s, attempts=%d", s.Profile, s.Region, s.MaxAttempts)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRetryer(func() awsv2.Retryer {
			return retry.NewStandard(func(o *retry.StandardOptions) {
				o.MaxAttempts = s.MaxAttempts
			})
		}),
	}
	if s.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(s.Profile))
	}
	if s.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(s.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	return cfg, nil
}

// NewS3Client loads the AWS config for opts and returns an S3 client for it.
func NewS3Client(ctx context.Context, opts ...Option) (*s3v2.Client, error) {
	s := NewSettings(opts...)

	cfg, err := LoadAWSConfig(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3v2.NewFromConfig(cfg, endpointOption(s.Endpoint))
	log.Debugf("s3 client created: endpoint=%q", s.Endpoint)
	return client, nil
}

// endpointOption sets a custom endpoint with path style addressing, which is
// what S3 compatible stores serve. An empty url leaves the SDK default.
func endpointOption(url string) func(*s3v2.Options) {
	return func(o *s3v2.Options) {
		if url == "" {
			return
		}
		o.BaseEndpoint = awsv2.String(url)
		o.UsePathStyle = true
	}
}
