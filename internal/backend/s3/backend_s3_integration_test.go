// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package s3

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awsx "github.com/tripctl/tripctl/internal/aws"
)

// TestIntegration_ReadReport round trips a report through a real bucket using
// the default credential chain.
func TestIntegration_ReadReport(t *testing.T) {
	t.Setenv("TRIPCTL_CACHE", "off")
	ctx := context.Background()

	client, err := awsx.NewS3Client(ctx, awsx.WithRegion("us-east-1"))
	require.NoError(t, err)

	bucket := fmt.Sprintf("tripctl-test-%d", time.Now().UnixNano())
	key := "reports/trips.json"
	report := []byte(`[{"id":"t-1","date":"2024-03-15","zone":"north","trips":2}]`)

	_, err = client.CreateBucket(ctx, &s3v2.CreateBucketInput{Bucket: awsv2.String(bucket)})
	require.NoError(t, err)
	defer func() {
		_, _ = client.DeleteObject(ctx, &s3v2.DeleteObjectInput{Bucket: awsv2.String(bucket), Key: awsv2.String(key)})
		_, _ = client.DeleteBucket(ctx, &s3v2.DeleteBucketInput{Bucket: awsv2.String(bucket)})
	}()

	_, err = client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
		Body:   bytes.NewReader(report),
	})
	require.NoError(t, err)

	be, err := NewBackendS3(ctx, FromURL("s3://"+bucket+"/"+key), WithRegion("us-east-1"))
	require.NoError(t, err)

	body, err := be.Body()
	require.NoError(t, err)
	assert.Equal(t, report, body)
}
