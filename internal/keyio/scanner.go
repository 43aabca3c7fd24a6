// Copyright 2024 The triebench Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package keyio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	// KeySep is the byte that separates keys within input files.
	KeySep = '\n'

	// DefaultBufferSize is the Scanner's buffer capacity when callers
	// don't specify one.  No key may be longer than the buffer.
	DefaultBufferSize = 64 * 1024
)

// ErrKeyTooLong is returned when an input key doesn't fit in the
// Scanner's buffer.
var ErrKeyTooLong = errors.New("key exceeds maximum buffer size")

// scanKeys is a bufio.SplitFunc yielding KeySep-separated byte
// strings.  Unlike bufio.ScanLines it never strips '\r': keys are
// arbitrary bytes, and only KeySep ends one.
func scanKeys(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, KeySep); i >= 0 {
		return i + 1, data[:i], nil
	}
	// a final key doesn't need a trailing separator
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Scanner yields successive keys from a reader through a single
// fixed-size buffer, so memory use is constant no matter how large the
// input file is.  A key longer than the buffer is an error, never a
// silent truncation.
type Scanner struct {
	s   *bufio.Scanner
	max int
}

// NewScanner returns a Scanner over r whose buffer holds max bytes.
// If max is <= 0, DefaultBufferSize is used.
func NewScanner(r io.Reader, max int) *Scanner {
	if max <= 0 {
		max = DefaultBufferSize
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, max), max)
	s.Split(scanKeys)
	return &Scanner{s: s, max: max}
}

// Scan advances to the next key.  It returns false at end of input or
// on error; Err tells the two apart.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Key returns the current key.  The slice aliases the Scanner's buffer
// and is only valid until the next call to Scan.
func (s *Scanner) Key() []byte {
	return s.s.Bytes()
}

// Err returns the first error encountered while scanning, or nil if we
// cleanly reached end of input.
func (s *Scanner) Err() error {
	err := s.s.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w (%d bytes)", ErrKeyTooLong, s.max)
	}
	return err
}
