//go:build windows

package relay

import (
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

var exit = os.Exit

// Exec runs path as a child without a console window, waits for it and
// terminates the launcher with the child's exit code.
func Exec(path string, args []string) error {
	cmd := exec.Command(path, args...)
	inheritStdio(cmd)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NO_WINDOW,
	}

	state, err := spawnAndWait(cmd)
	if err != nil {
		return err
	}
	exit(exitCode(state))
	panic("relay: exit returned")
}

// inheritStdio passes the launcher's standard handles to the child.
// CREATE_NO_WINDOW would otherwise leave stdin detached, and os/exec connects
// unset streams to NUL. A GUI-subsystem process may have no handles at all.
func inheritStdio(cmd *exec.Cmd) {
	if os.Stdin != nil {
		cmd.Stdin = os.Stdin
	}
	if os.Stdout != nil {
		cmd.Stdout = os.Stdout
	}
	if os.Stderr != nil {
		cmd.Stderr = os.Stderr
	}
}
