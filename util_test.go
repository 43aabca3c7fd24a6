// Copyright 2024 The triebench Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package triebench

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCut(t *testing.T) {
	sep := byte('\n')
	for _, testcase := range []string{
		"",
		"a\nb",
		"\na\nb\n",
		"a\nb\n",
		"abc",
		"\n",
	} {
		input := []byte(testcase)
		expectedL, expectedR, expectedOK := bytes.Cut(input, []byte{sep})

		var actualL, actualR []byte
		var actualOK bool
		allocs := testing.AllocsPerRun(16, func() {
			actualL, actualR, actualOK = cut(input, sep)
		})
		require.Zero(t, allocs)

		assert.Equal(t, expectedOK, actualOK, "input %q", testcase)
		assert.Equal(t, expectedL, actualL, "input %q", testcase)
		assert.Equal(t, expectedR, actualR, "input %q", testcase)
	}
}
