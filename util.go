// Copyright 2024 The triebench Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package triebench

import (
	"bytes"
)

// cut slices s around the first instance of sep without allocating.
// If sep isn't present, it returns s, nil, false.
func cut(s []byte, sep byte) (l []byte, r []byte, ok bool) {
	m := bytes.IndexByte(s, sep)
	if m < 0 {
		return s, nil, false
	}

	l = s[:m]
	r = s[m+1:]
	ok = true
	return
}
