// Copyright 2024 The triebench Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package triebench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Trie = &CedarTrie{}

// mixed-width keys: single bytes, multibyte UTF-8, nested prefixes
var dictKeys = []string{
	"a",
	"ab",
	"abc",
	"アルゴリズム",
	"データ",
	"構造",
	"网",
	"网球",
	"网球拍",
	"中",
	"中华",
	"中华人民",
	"中华人民共和国",
}

func TestCedarTrie(t *testing.T) {
	trie := NewCedarTrie()
	for i, key := range dictKeys {
		require.NoError(t, trie.Insert([]byte(key), i+1))
	}

	for _, key := range dictKeys {
		assert.True(t, trie.Lookup([]byte(key)), "expected %q present", key)
	}

	for _, key := range []string{
		"",
		"b",
		"abcd",
		"アルゴ",
		"中华人",
		"网球场",
		"doesn't exist",
	} {
		assert.False(t, trie.Lookup([]byte(key)), "expected %q absent", key)
	}
}

func TestCedarTrie_DuplicateInsert(t *testing.T) {
	trie := NewCedarTrie()
	require.NoError(t, trie.Insert([]byte("a"), 1))
	require.NoError(t, trie.Insert([]byte("a"), 2))
	assert.True(t, trie.Lookup([]byte("a")))
}

func TestCedarTrie_WithBench(t *testing.T) {
	var out bytes.Buffer
	b := New(NewCedarTrie(), WithLabel("cedar"), WithOutput(&out))

	stats, err := b.Insert(strings.NewReader("a\nb\nc\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Keys)

	lookup := b.Lookup([]byte("a\nb\nd\n"))
	assert.Equal(t, 3, lookup.Keys)
	assert.Equal(t, 2, lookup.Found)
}
