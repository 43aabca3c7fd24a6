// Copyright 2024 The triebench Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package triebench measures the bulk insert and exact-match lookup
// throughput of a trie over newline-delimited key files.
package triebench

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/bpowers/triebench/internal/keyio"
)

// SkipQueries as the queries path skips the lookup phase entirely.
const SkipQueries = "-"

// Option adjusts how a Bench runs and reports.
type Option func(*benchOptions)

type benchOptions struct {
	label      string
	out        io.Writer
	logger     *slog.Logger
	bufferSize int
}

// WithLabel sets the name printed in the report banner.
func WithLabel(label string) Option {
	return func(opts *benchOptions) {
		opts.label = label
	}
}

// WithOutput sets the writer the report is printed to.  If not
// provided, the report goes to standard error.
func WithOutput(w io.Writer) Option {
	return func(opts *benchOptions) {
		opts.out = w
	}
}

// WithLogger sets an optional logger for debug and diagnostic details.
// If not provided, no log output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *benchOptions) {
		opts.logger = logger
	}
}

// WithBufferSize sets the insert phase's key buffer capacity in bytes.
// Keys longer than the buffer are reported as errors, not truncated.
func WithBufferSize(n int) Option {
	return func(opts *benchOptions) {
		opts.bufferSize = n
	}
}

// Bench times bulk insertion and bulk exact-match lookup of
// newline-delimited keys against a Trie.  The insert phase must run
// (and fully build the trie) before the lookup phase; RunFiles
// sequences the two.
type Bench struct {
	trie       Trie
	label      string
	out        io.Writer
	logger     *slog.Logger
	bufferSize int
}

// New returns a Bench driving t.  The Bench assumes it is the only
// user of t for the duration of a run.
func New(t Trie, opts ...Option) *Bench {
	options := benchOptions{
		label:      "trie",
		out:        os.Stderr,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		bufferSize: keyio.DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Bench{
		trie:       t,
		label:      options.label,
		out:        options.out,
		logger:     options.logger,
		bufferSize: options.bufferSize,
	}
}

// Stats describes one timed phase.
type Stats struct {
	Keys    int           // keys fed to the trie
	Found   int           // keys present in the trie (lookup phase only)
	Elapsed time.Duration // wall-clock time spent in the phase loop
}

// Seconds returns the phase's elapsed time in seconds.
func (s Stats) Seconds() float64 {
	return s.Elapsed.Seconds()
}

// NsPerKey returns the mean cost of one trie operation in nanoseconds.
// A phase that processed no keys reports 0.
func (s Stats) NsPerKey() float64 {
	if s.Keys == 0 {
		return 0
	}
	return float64(s.Elapsed.Nanoseconds()) / float64(s.Keys)
}

// Insert streams newline-delimited keys from r into the trie, giving
// the i'th key (counting from 1) the value i.  The clock covers the
// whole scan loop, so reads from r count against the phase.  Keys
// arrive in file order, and empty lines are keys too.
func (b *Bench) Insert(r io.Reader) (Stats, error) {
	s := keyio.NewScanner(r, b.bufferSize)

	n := 0
	start := time.Now()
	for s.Scan() {
		n++
		if err := b.trie.Insert(s.Key(), n); err != nil {
			return Stats{}, fmt.Errorf("insert key %d: %w", n, err)
		}
	}
	elapsed := time.Since(start)

	if err := s.Err(); err != nil {
		return Stats{}, err
	}

	return Stats{Keys: n, Elapsed: elapsed}, nil
}

// Lookup queries every newline-delimited key in data against the trie,
// counting how many are present.  data is sliced in place with no
// copying; a final key doesn't need a trailing separator.  Lookup
// doesn't modify the trie, so repeated calls over the same data return
// the same counts.
func (b *Bench) Lookup(data []byte) Stats {
	n, found := 0, 0
	start := time.Now()
	for len(data) > 0 {
		key, rest, _ := cut(data, keyio.KeySep)
		if b.trie.Lookup(key) {
			found++
		}
		n++
		data = rest
	}
	elapsed := time.Since(start)

	return Stats{Keys: n, Found: found, Elapsed: elapsed}
}

// RunFiles runs the insert phase over the keys file, then the lookup
// phase over the queries file, writing a report for each.  A queries
// path equal to SkipQueries ends the run after the insert phase.
func (b *Bench) RunFiles(keysPath, queriesPath string) error {
	fmt.Fprintf(b.out, "---- %-25s --------------------------\n", b.label)

	f, err := os.Open(keysPath)
	if err != nil {
		return fmt.Errorf("os.Open(%s): %w", keysPath, err)
	}
	insert, err := b.Insert(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("insert phase: %w", err)
	}
	b.logger.Debug("insert phase done", "keys", insert.Keys, "elapsed", insert.Elapsed)

	fmt.Fprintf(b.out, "%-20s %.2f sec (%.2f nsec per key)\n", "Time to insert:", insert.Seconds(), insert.NsPerKey())
	fmt.Fprintf(b.out, "%-20s %d\n\n", "Words:", insert.Keys)

	if queriesPath == SkipQueries {
		return nil
	}

	data, err := b.loadQueries(queriesPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = data.Close()
	}()

	lookup := b.Lookup(data.Bytes())
	b.logger.Debug("lookup phase done", "keys", lookup.Keys, "found", lookup.Found, "elapsed", lookup.Elapsed)

	fmt.Fprintf(b.out, "%-20s %.2f sec (%.2f nsec per key)\n", "Time to search:", lookup.Seconds(), lookup.NsPerKey())
	fmt.Fprintf(b.out, "%-20s %d\n", "Words:", lookup.Keys)
	fmt.Fprintf(b.out, "%-20s %d\n", "Found:", lookup.Found)

	return nil
}

// loadQueries pulls the whole queries file into memory before the
// timed lookup loop starts, so page-in cost doesn't pollute the
// numbers.  mmap keeps big query files off the Go heap; if mapping
// fails for a readable file we fall back to a plain read.
func (b *Bench) loadQueries(path string) (*keyio.Data, error) {
	data, err := keyio.MapFile(path)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return nil, err
	}

	b.logger.Warn("mmap failed, reading queries onto the heap", "path", path, "err", err)
	return keyio.ReadFile(path)
}
