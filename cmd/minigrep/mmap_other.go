//go:build !unix

package main

import (
	"fmt"
	"os"
)

// readFile reads the whole file. Memory mapping is only used on unix.
func readFile(path string) (data []byte, release func() error, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if fi.IsDir() {
		return nil, nil, fmt.Errorf("%s: is a directory", path)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
