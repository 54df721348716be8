// Package locator finds the binary the launcher relays to. The target is
// expected next to the launcher executable, under a fixed base name plus the
// platform's executable suffix.
package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	// ErrResolution means the launcher's own path or directory is unknown.
	ErrResolution = errors.New("could not determine launcher location")
	// ErrTargetNotFound means the target is confirmed absent from disk.
	ErrTargetNotFound = errors.New("target binary not found")
)

// Locate resolves the sibling binary called name for the running executable.
func Locate(name string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolution, err)
	}
	return Resolve(exe, name)
}

// Resolve derives the target path from the launcher path exe and checks that
// the target exists. A stat failure other than "not exist" is not an error;
// the spawn that follows reports the real cause.
func Resolve(exe, name string) (string, error) {
	dir, ok := parentDir(exe)
	if !ok {
		return "", ErrResolution
	}

	target := filepath.Join(dir, name+ExeSuffix)
	if _, err := os.Stat(target); errors.Is(err, fs.ErrNotExist) {
		return "", &notFoundError{name: name, path: target}
	}
	return target, nil
}

func parentDir(exe string) (string, bool) {
	if exe == "" {
		return "", false
	}
	dir := filepath.Dir(exe)
	if dir == "." || dir == exe {
		return "", false
	}
	return dir, true
}

type notFoundError struct {
	name string
	path string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("could not find the `%s` binary at: %s", e.name, e.path)
}

func (e *notFoundError) Unwrap() error { return ErrTargetNotFound }
