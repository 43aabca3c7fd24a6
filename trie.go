// Copyright 2024 The triebench Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package triebench

import (
	cedar "github.com/adamzy/cedar-go"
)

// Trie is the minimal surface the harness needs from a keyed lookup
// structure: associate an integer with a byte-string key, and report
// whether a key is present.  Implementations don't need to be
// goroutine-safe; the harness drives them from a single goroutine.
type Trie interface {
	// Insert associates value with key.
	Insert(key []byte, value int) error
	// Lookup reports whether key was previously inserted.
	Lookup(key []byte) bool
}

// CedarTrie adapts the cedar double-array trie to the Trie interface.
type CedarTrie struct {
	da *cedar.Cedar
}

// NewCedarTrie returns an empty double-array trie.
func NewCedarTrie() *CedarTrie {
	return &CedarTrie{
		da: cedar.New(),
	}
}

// Insert associates value with key.
func (t *CedarTrie) Insert(key []byte, value int) error {
	return t.da.Insert(key, value)
}

// Lookup reports whether key holds a value in the trie.  Keys that are
// only prefixes of inserted keys don't count.
func (t *CedarTrie) Lookup(key []byte) bool {
	_, err := t.da.Get(key)
	return err == nil
}
