// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/tripctl/tripctl/internal/aws"
	"github.com/tripctl/tripctl/internal/log"
)

// GetObjectAPI is the slice of the S3 client BackendS3 needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// BackendS3 reads a report from an S3 object, optionally a specific version.
type BackendS3 struct {
	Ctx       context.Context
	Bucket    string
	Key       string
	VersionID string
	Region    string
	Profile   string
	Endpoint  string

	client GetObjectAPI
}

// Body implements backend.Backend. Versioned objects are immutable, so their
// bodies are served from and written to the cache.
func (be *BackendS3) Body() ([]byte, error) {
	if err := PurgeCache(); err != nil {
		log.WithError(err).Warn("failed to purge cache")
	}

	if be.VersionID != "" {
		if entry, ok := CacheReader(be); ok {
			return entry.Data, nil
		}
	}

	client, err := be.s3Client()
	if err != nil {
		return nil, err
	}

	input := &s3v2.GetObjectInput{
		Bucket: awsv2.String(be.Bucket),
		Key:    awsv2.String(be.Key),
	}
	if be.VersionID != "" {
		input.VersionId = awsv2.String(be.VersionID)
	}

	result, err := client.GetObject(be.Ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object %s: %w", be, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}
	log.Debugf("read %d bytes from %s", len(data), be)

	if be.VersionID != "" {
		if err := CacheWriter(be, data); err != nil {
			log.WithError(err).Error("error writing to cache")
		}
	}

	return data, nil
}

// s3Client builds the SDK client on first use.
func (be *BackendS3) s3Client() (GetObjectAPI, error) {
	if be.client != nil {
		return be.client, nil
	}

	client, err := awsx.NewS3Client(be.Ctx,
		awsx.WithRegion(be.Region),
		awsx.WithProfile(be.Profile),
		awsx.WithEndpoint(be.Endpoint),
	)
	if err != nil {
		return nil, err
	}

	be.client = client
	return be.client, nil
}

// String implements backend.Backend. It renders the source URL.
func (be *BackendS3) String() string {
	u := url.URL{Scheme: "s3", Host: be.Bucket, Path: "/" + be.Key}
	if be.VersionID != "" {
		u.RawQuery = url.Values{"versionId": {be.VersionID}}.Encode()
	}
	return u.String()
}

// Type implements backend.Backend.
func (be *BackendS3) Type() string {
	return "s3"
}
