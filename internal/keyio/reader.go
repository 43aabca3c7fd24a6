// Copyright 2024 The triebench Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package keyio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Data holds a query file's contents read-only in memory until
// released with Close.
type Data struct {
	b      []byte
	mapped bool
}

// Bytes returns the file contents.  Callers must not modify the
// returned slice.
func (d *Data) Bytes() []byte {
	return d.b
}

// Close releases the contents.  It is safe to call multiple times.
func (d *Data) Close() error {
	b, mapped := d.b, d.mapped
	d.b, d.mapped = nil, false
	if !mapped || b == nil {
		return nil
	}
	return unix.Munmap(b)
}

// MapFile memory-maps the file at path read-only, hinting to the
// kernel that we will scan it front to back.
func MapFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s): %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	stats, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("f.Stat: %w", err)
	}
	size := stats.Size()
	if size == 0 {
		// mmap rejects zero-length mappings
		return &Data{}, nil
	}
	if size != int64(int(size)) {
		return nil, fmt.Errorf("file %s too big to map (%d bytes)", path, size)
	}

	b, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("unix.Mmap(%s): %w", path, err)
	}
	if err := unix.Madvise(b, unix.MADV_SEQUENTIAL); err != nil {
		_ = unix.Munmap(b)
		return nil, fmt.Errorf("madvise: %s", err)
	}

	return &Data{b: b, mapped: true}, nil
}

// ReadFile reads the file at path fully onto the heap.  It is the
// fallback for inputs that can't be mapped, like pipes.
func ReadFile(path string) (*Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s): %w", path, err)
	}
	return &Data{b: b}, nil
}
