// Command appcenter-agentw starts the appcenter-agent binary that sits next
// to it, forwarding arguments, standard streams and the exit code unchanged.
//
// On Windows it is built as a GUI-subsystem program so that launching it from
// Explorer, the tray or a scheduled task opens no console window:
//
//	go build -ldflags "-H=windowsgui" ./cmd/appcenter-agentw
package main

import (
	"fmt"
	"io"
	"os"

	"appcenter-launcher/internal/locator"
	"appcenter-launcher/internal/relay"
)

// targetName can be changed at link time with -X main.targetName=<name>.
var targetName = "appcenter-agent"

func main() {
	args := os.Args[1:]
	os.Exit(launch(args, os.Stderr))
}

// launch only returns when the target could not be started.
func launch(args []string, stderr io.Writer) int {
	if err := run(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return relay.FallbackCode
}

func run(args []string) error {
	target, err := locator.Locate(targetName)
	if err != nil {
		return err
	}
	return relay.Exec(target, args)
}
