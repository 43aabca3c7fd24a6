// Copyright 2024 The triebench Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package keyio reads newline-delimited key files.
//
// A key file is a sequence of byte strings separated by a single '\n'
// byte: no escaping, no quoting, no header.  The insert path streams a
// file of any size through a Scanner backed by one fixed-size, reused
// buffer; the lookup path holds a whole query file read-only in memory
// via Data, preferring mmap and falling back to heap reads.
package keyio
