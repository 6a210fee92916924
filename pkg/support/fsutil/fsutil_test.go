// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fsutil

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	usr, err := user.Current()
	require.NoError(t, err)
	for input, want := range map[string]string{
		"":             "",
		"options.yaml": "options.yaml",
		"/tmp/a~b":     "/tmp/a~b",
		"~":            usr.HomeDir,
		"~/qnn/a.yaml": filepath.Join(usr.HomeDir, "qnn/a.yaml"),
	} {
		got, err := ExpandHome(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "ExpandHome(%q)", input)
	}
	_, err = ExpandHome("~no_such_user_for_sure/x")
	require.Error(t, err)
}

func TestReadWriteFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "nested", "dir", "options.bin")
	exists, err := FileExists(filePath)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, WriteFile(filePath, []byte("payload")))
	exists, err = FileExists(filePath)
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := ReadFile(filePath, "options")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"), "graph")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read graph")
}
