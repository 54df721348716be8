//go:build !windows

package relay

import (
	"os"

	"golang.org/x/sys/unix"
)

var (
	defaultExecve = unix.Exec
	execve        = defaultExecve
)

// Exec replaces the current process image with path. Open descriptors,
// including the standard streams, stay with the new image.
func Exec(path string, args []string) error {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, path)
	argv = append(argv, args...)

	err := execve(path, argv, os.Environ())
	return &SpawnError{Path: path, Err: err}
}
