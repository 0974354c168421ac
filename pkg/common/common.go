// Package common has bits used by commands and tests all over the place.
package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// The extension matters to us, so the name ends in ext.
func WrtTemp(s, ext string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing*"+ext)
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	return f_tmp.Name(), nil
}

// WrtTempDir is like WrtTemp, but puts the file in dir, so the caller
// can have the testing package clean up.
func WrtTempDir(dir, name, s string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		return "", fmt.Errorf("writing test file %s: %w", path, err)
	}
	return path, nil
}
