// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package s3

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves bodies keyed by "key@version" and records every request.
type fakeS3 struct {
	bodies map[string]string
	calls  []s3v2.GetObjectInput
}

func (f *fakeS3) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.calls = append(f.calls, *in)
	id := awsv2.ToString(in.Key) + "@" + awsv2.ToString(in.VersionId)
	body, ok := f.bodies[id]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func noCache(t *testing.T) {
	t.Helper()
	t.Setenv("TRIPCTL_CACHE", "off")
	t.Setenv("TRIPCTL_CFG_FILE", filepath.Join(t.TempDir(), "none.yaml"))
}

func TestFromURL(t *testing.T) {
	tests := []struct {
		url     string
		bucket  string
		key     string
		version string
		wantErr bool
	}{
		{url: "s3://reports/daily/2024-03-15.json", bucket: "reports", key: "daily/2024-03-15.json"},
		{url: "s3://reports/trips.json?versionId=abc123", bucket: "reports", key: "trips.json", version: "abc123"},
		{url: "s3://reports", bucket: "reports", wantErr: true},
		{url: "s3:///trips.json", key: "trips.json", wantErr: true},
		{url: "gs://reports/trips.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			noCache(t)
			be, err := NewBackendS3(context.Background(), FromURL(tt.url))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, be.Bucket)
			assert.Equal(t, tt.key, be.Key)
			assert.Equal(t, tt.version, be.VersionID)
			assert.Equal(t, tt.url, be.String())
			assert.Equal(t, "s3", be.Type())
		})
	}
}

func TestBody_Latest(t *testing.T) {
	noCache(t)
	fake := &fakeS3{bodies: map[string]string{"trips.json@": `[{"id":"t-1"}]`}}

	be, err := NewBackendS3(context.Background(), FromURL("s3://reports/trips.json"), WithClient(fake))
	require.NoError(t, err)

	body, err := be.Body()
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"t-1"}]`, string(body))
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "reports", awsv2.ToString(fake.calls[0].Bucket))
	assert.Nil(t, fake.calls[0].VersionId)
}

func TestBody_Error(t *testing.T) {
	noCache(t)
	be, err := NewBackendS3(context.Background(), FromURL("s3://reports/missing.json"), WithClient(&fakeS3{}))
	require.NoError(t, err)

	_, err = be.Body()
	assert.ErrorContains(t, err, "s3://reports/missing.json")
}

func TestBody_VersionCached(t *testing.T) {
	noCache(t)
	t.Setenv("TRIPCTL_CACHE", "")
	t.Setenv("TRIPCTL_CACHE_DIR", t.TempDir())

	fake := &fakeS3{bodies: map[string]string{"trips.json@v1": `[]`}}
	newBackend := func() *BackendS3 {
		be, err := NewBackendS3(context.Background(), FromURL("s3://reports/trips.json?versionId=v1"), WithClient(fake))
		require.NoError(t, err)
		return be
	}

	body, err := newBackend().Body()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	body, err = newBackend().Body()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	assert.Len(t, fake.calls, 1, "second read is served from the cache")
	assert.Equal(t, "v1", awsv2.ToString(fake.calls[0].VersionId))
}

func TestWithOptions(t *testing.T) {
	noCache(t)
	be, err := NewBackendS3(context.Background(),
		FromURL("s3://reports/trips.json"),
		WithRegion("eu-west-1"),
		WithProfile("reports"),
		WithEndpoint("http://localhost:9000"),
		WithConfig(),
	)
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", be.Region)
	assert.Equal(t, "reports", be.Profile)
	assert.Equal(t, "http://localhost:9000", be.Endpoint)
}
