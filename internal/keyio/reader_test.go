// Copyright 2024 The triebench Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package keyio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestMapFile(t *testing.T) {
	path := writeTempFile(t, "hello\nworld\n")

	d, err := MapFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(d.Bytes()))

	require.NoError(t, d.Close())
	// Close is idempotent
	require.NoError(t, d.Close())
	assert.Nil(t, d.Bytes())
}

func TestMapFile_Empty(t *testing.T) {
	path := writeTempFile(t, "")

	d, err := MapFile(path)
	require.NoError(t, err)
	assert.Len(t, d.Bytes(), 0)
	require.NoError(t, d.Close())
}

func TestMapFile_Errors(t *testing.T) {
	_, err := MapFile("/doesnt/exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/doesnt/exist")
}

func TestReadFile(t *testing.T) {
	path := writeTempFile(t, "a\nb\n")

	d, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(d.Bytes()))
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	_, err = ReadFile("/doesnt/exist")
	require.Error(t, err)
}
