// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendLocal_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"t-1"}]`), 0o600))

	be, err := NewBackendLocal(context.Background(), FromPath(path))
	require.NoError(t, err)

	body, err := be.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"t-1"}]`, string(body))
	assert.Equal(t, path, be.String())
	assert.Equal(t, "local", be.Type())
}

func TestBackendLocal_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "r.json"), []byte(`[]`), 0o600))
	t.Chdir(dir)

	be, err := NewBackendLocal(context.Background(), FromPath("r.json"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(be.Path))
}

func TestBackendLocal_BadPath(t *testing.T) {
	dir := t.TempDir()

	_, err := NewBackendLocal(context.Background(), FromPath(filepath.Join(dir, "missing.json")))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewBackendLocal(context.Background(), FromPath(dir))
	assert.ErrorContains(t, err, "is a directory")
}

func TestBackendLocal_Stdin(t *testing.T) {
	be, err := NewBackendLocal(context.Background(),
		FromPath(Stdin),
		WithStdin(strings.NewReader(`[{"id":"piped"}]`), false),
	)
	require.NoError(t, err)

	body, err := be.Body()
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"piped"}]`, string(body))
	assert.Equal(t, "stdin", be.String())
}

func TestBackendLocal_TerminalStdin(t *testing.T) {
	be, err := NewBackendLocal(context.Background(), WithStdin(strings.NewReader(""), true))
	require.NoError(t, err)

	_, err = be.Body()
	assert.ErrorIs(t, err, ErrTerminalStdin)
}
