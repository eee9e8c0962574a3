//go:build unix

package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// readFile maps a regular file read-only into memory. Empty and
// non-regular files, and files that cannot be mapped, are read instead.
// The data is valid until release is called.
func readFile(path string) (data []byte, release func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if fi.IsDir() {
		return nil, nil, fmt.Errorf("%s: is a directory", path)
	}

	size := fi.Size()
	if !fi.Mode().IsRegular() || size == 0 || size > math.MaxInt {
		return readAll(f)
	}

	data, err = unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return readAll(f)
	}
	return data, func() error { return unix.Munmap(data) }, nil
}

func readAll(r io.Reader) ([]byte, func() error, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return data, noRelease, nil
}

func noRelease() error { return nil }
