// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the SDK away from the developer's shared config files.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", dir+"/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", dir+"/credentials")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
}

func TestNewSettings(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want Settings
	}{
		{
			name: "defaults",
			want: Settings{MaxAttempts: DefaultMaxAttempts},
		},
		{
			name: "all set",
			opts: []Option{
				WithProfile("reports"),
				WithRegion("eu-west-1"),
				WithEndpoint("http://localhost:9000"),
				WithMaxAttempts(5),
			},
			want: Settings{Profile: "reports", Region: "eu-west-1", Endpoint: "http://localhost:9000", MaxAttempts: 5},
		},
		{
			name: "later option wins",
			opts: []Option{WithRegion("us-east-1"), WithRegion("eu-central-1")},
			want: Settings{Region: "eu-central-1", MaxAttempts: DefaultMaxAttempts},
		},
		{
			name: "zero attempts",
			opts: []Option{WithMaxAttempts(0)},
			want: Settings{MaxAttempts: DefaultMaxAttempts},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSettings(tt.opts...))
		})
	}
}

func TestLoadAWSConfig(t *testing.T) {
	isolate(t)

	cfg, err := LoadAWSConfig(context.Background(), NewSettings(WithRegion("us-west-2"), WithMaxAttempts(7)))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
	require.NotNil(t, cfg.Retryer)
	assert.Equal(t, 7, cfg.Retryer().MaxAttempts())
}

func TestLoadAWSConfig_MissingProfile(t *testing.T) {
	isolate(t)

	_, err := LoadAWSConfig(context.Background(), NewSettings(WithProfile("no-such-profile")))
	assert.Error(t, err)
}

func TestNewS3Client(t *testing.T) {
	isolate(t)

	client, err := NewS3Client(context.Background(), WithRegion("us-east-1"), WithEndpoint("http://localhost:9000"))
	require.NoError(t, err)
	assert.IsType(t, &s3v2.Client{}, client)

	o := client.Options()
	assert.Equal(t, "us-east-1", o.Region)
	require.NotNil(t, o.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *o.BaseEndpoint)
	assert.True(t, o.UsePathStyle)
}

func TestEndpointOption_Empty(t *testing.T) {
	var o s3v2.Options
	endpointOption("")(&o)
	assert.Nil(t, o.BaseEndpoint)
	assert.False(t, o.UsePathStyle)
}
