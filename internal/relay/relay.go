// Package relay hands control of the current process to another binary.
//
// Exec has a single contract on every platform: it does not return when the
// target was started successfully, and otherwise returns a *SpawnError.
// Where the kernel can replace the process image (relay_nonwindows.go) the
// launcher becomes the target. On Windows (relay_windows.go) the target runs
// as a hidden-console child and the launcher exits with the child's code.
package relay

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// FallbackCode is the exit code used when no target code can be reported.
const FallbackCode = 2

// SpawnError means the OS refused to start or replace into the target.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// exitCode returns the code the target exited with, unchanged. A status that
// carries no code (killed by a signal, or never collected) yields FallbackCode.
func exitCode(state *os.ProcessState) int {
	if state == nil {
		return FallbackCode
	}
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	return FallbackCode
}

// spawnAndWait runs cmd to completion. A target that exits non-zero is a
// status, not an error.
func spawnAndWait(cmd *exec.Cmd) (*os.ProcessState, error) {
	err := cmd.Run()
	if err == nil {
		return cmd.ProcessState, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ProcessState, nil
	}
	return nil, &SpawnError{Path: cmd.Path, Err: unwrapExecError(err)}
}

// unwrapExecError drops the "fork/exec <path>:" prefix os/exec adds, since
// SpawnError already names the path.
func unwrapExecError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
