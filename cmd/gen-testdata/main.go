package main

import (
	"bufio"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"

	"github.com/dgryski/go-farm"
)

const (
	nKeys     = 1000000
	nQueries  = 1000000
	missEvery = 10 // every missEvery'th query is absent from the key file
	keyPrefix = "pref_"

	writeBufferSize = 4 * 1024 * 1024
)

func newRand() *rand.Rand {
	var seedBytes [8]byte
	crand.Read(seedBytes[:])
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return rand.New(rand.NewSource(seed))
}

type stringSet map[string]struct{}

func (set stringSet) Contains(s string) bool {
	_, ok := set[s]
	return ok
}

func (set stringSet) Add(s string) {
	set[s] = struct{}{}
}

func genKeys(rng *rand.Rand) []string {
	seen := make(stringSet, nKeys)
	keys := make([]string, 0, nKeys)
	var buf [8]byte
	for len(keys) < nKeys {
		if _, err := rng.Read(buf[:]); err != nil {
			panic(err)
		}
		key := fmt.Sprintf("%s%016x", keyPrefix, farm.Fingerprint64(buf[:]))
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		keys = append(keys, key)
	}
	return keys
}

func writeLines(path string, emit func(w *bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s): %w", path, err)
	}
	w := bufio.NewWriterSize(f, writeBufferSize)
	if err := emit(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("bufio.Flush: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("f.Sync: %w", err)
	}
	return f.Close()
}

func writeKey(w *bufio.Writer, key string) error {
	if _, err := w.WriteString(key); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s keys-out queries-out\n", os.Args[0])
		os.Exit(1)
	}

	rng := newRand()
	keys := genKeys(rng)

	err := writeLines(os.Args[1], func(w *bufio.Writer) error {
		for _, key := range keys {
			if err := writeKey(w, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = writeLines(os.Args[2], func(w *bufio.Writer) error {
		for i := 0; i < nQueries; i++ {
			key := keys[rng.Intn(len(keys))]
			if i%missEvery == 0 {
				// keys all start with keyPrefix, so this can't collide
				key = "miss_" + key
			}
			if err := writeKey(w, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
