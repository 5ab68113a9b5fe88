// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points TRIPCTL_CFG_FILE at a testdata file and resets the
// global Config. Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("TRIPCTL_CFG_FILE", absPath)
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

// withConfig sets up a test config, loads it and runs fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	cleanup := setupTestConfig(t, testFile)
	defer cleanup()
	_, _ = Load()
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "full",
			testFile: "full.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				fields, ok := cfg.Data["fields"].(map[string]interface{})
				require.True(t, ok, "fields should be a map")
				assert.Equal(t, "departed", fields["date"])
			},
		},
		{
			name:     "malformed",
			testFile: "malformed.yaml",
			wantErr:  true,
		},
		{
			name:     "missing",
			testFile: "nope.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Setenv("TRIPCTL_CFG_FILE", "")
	defer func() { Config = Type{} }()

	cfg, err := Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "full.yaml"), cfg.Source)
}

func TestGetConfigFile_Directory(t *testing.T) {
	t.Setenv("TRIPCTL_CFG_FILE", t.TempDir())
	_, err := getConfigFile()
	assert.ErrorContains(t, err, "points to a directory")
}

func TestGetString(t *testing.T) {
	withConfig(t, "full.yaml", func(t *testing.T) {
		v, err := GetString("fields.zone")
		assert.NoError(t, err)
		assert.Equal(t, "region", v)

		v, err = GetString("fields.nope", "fallback")
		assert.NoError(t, err)
		assert.Equal(t, "fallback", v)

		_, err = GetString("fields.nope")
		assert.Error(t, err)

		_, err = GetString("cache.clean")
		assert.EqualError(t, err, "value is not a string")
	})
}

func TestGetString_Namespace(t *testing.T) {
	withConfig(t, "full.yaml", func(t *testing.T) {
		Config.Namespace = "rq"

		v, err := GetString("zone")
		assert.NoError(t, err)
		assert.Equal(t, "north", v)

		// Not under rq, falls back to the bare key.
		v, err = GetString("fields.id")
		assert.NoError(t, err)
		assert.Equal(t, "tripId", v)

		Config.Namespace = "fs"
		v, err = GetString("zone", "")
		assert.NoError(t, err)
		assert.Empty(t, v)
	})
}

func TestGetInt(t *testing.T) {
	withConfig(t, "full.yaml", func(t *testing.T) {
		v, err := GetInt("cache.clean")
		assert.NoError(t, err)
		assert.Equal(t, 14, v)

		v, err = GetInt("cache.other", 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, v)

		_, err = GetInt("fields.date")
		assert.EqualError(t, err, "value is not an int")
	})
}

func TestGetBool(t *testing.T) {
	withConfig(t, "full.yaml", func(t *testing.T) {
		v, err := GetBool("categories.trips")
		assert.NoError(t, err)
		assert.True(t, v)

		Config.Namespace = "fs"
		v, err = GetBool("strict")
		assert.NoError(t, err)
		assert.True(t, v)

		Config.Namespace = ""
		v, err = GetBool("strict", false)
		assert.NoError(t, err)
		assert.False(t, v)
	})

	withConfig(t, "mistyped.yaml", func(t *testing.T) {
		_, err := GetBool("categories.trips")
		assert.EqualError(t, err, "value is not a bool")
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "full.yaml", func(t *testing.T) {
		v, err := GetStringSlice("rq.defaults")
		assert.NoError(t, err)
		assert.Equal(t, []string{"--sort=date", "--titles"}, v)

		v, err = GetStringSlice("fs.defaults", []string{})
		assert.NoError(t, err)
		assert.Empty(t, v)

		_, err = GetStringSlice("fields")
		assert.EqualError(t, err, "value is not a slice")
	})

	withConfig(t, "mistyped.yaml", func(t *testing.T) {
		_, err := GetStringSlice("fields.ids")
		assert.EqualError(t, err, "slice element is not a string")
	})
}

func TestLoadPresentation(t *testing.T) {
	withConfig(t, "full.yaml", func(t *testing.T) {
		p := LoadPresentation()
		assert.Equal(t, 3, p.Padding)
		assert.Equal(t, "#ffffff", p.TitleColor)
		assert.Equal(t, "#dddddd", p.EvenColor)
		assert.Equal(t, "#bbbbbb", p.OddColor)
		assert.Equal(t, "#111111", p.TripColor(0))
		assert.Equal(t, DefaultTripColors[1], p.TripColor(1))
		assert.Equal(t, DefaultTripColors[2], p.TripColor(2))
		assert.Equal(t, "#333333", p.TripColor(3))
		assert.Equal(t, "#333333", p.TripColor(9))
		assert.Equal(t, "#111111", p.TripColor(-1))
	})

	withConfig(t, "mistyped.yaml", func(t *testing.T) {
		p := LoadPresentation()
		assert.Equal(t, 2, p.Padding, "a mistyped padding falls back")
		assert.Equal(t, DefaultTripColors, p.TripColors)
	})
}
