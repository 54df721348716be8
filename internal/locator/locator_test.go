package locator

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestResolveFindsSibling(t *testing.T) {
	tmp := t.TempDir()
	launcher := filepath.Join(tmp, "appcenter-agentw"+ExeSuffix)
	want := filepath.Join(tmp, "appcenter-agent"+ExeSuffix)
	if err := os.WriteFile(want, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write target: %v", err)
	}

	got, err := Resolve(launcher, "appcenter-agent")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != want {
		t.Fatalf("target = %q, want %q", got, want)
	}
}

func TestResolveMissingTarget(t *testing.T) {
	tmp := t.TempDir()
	launcher := filepath.Join(tmp, "appcenter-agentw"+ExeSuffix)
	want := filepath.Join(tmp, "appcenter-agent"+ExeSuffix)

	_, err := Resolve(launcher, "appcenter-agent")
	if !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("err = %v, want ErrTargetNotFound", err)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not mention %q", err.Error(), want)
	}
}

func TestResolveWithoutParent(t *testing.T) {
	cases := []string{"", "appcenter-agentw", string(filepath.Separator)}
	for _, exe := range cases {
		if _, err := Resolve(exe, "appcenter-agent"); !errors.Is(err, ErrResolution) {
			t.Fatalf("Resolve(%q) err = %v, want ErrResolution", exe, err)
		}
	}
}

func TestResolveProceedsWhenStatFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}

	tmp := t.TempDir()
	locked := filepath.Join(tmp, "locked")
	if err := os.Mkdir(locked, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	launcher := filepath.Join(locked, "appcenter-agentw")
	got, err := Resolve(launcher, "appcenter-agent")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(locked, "appcenter-agent"); got != want {
		t.Fatalf("target = %q, want %q", got, want)
	}
}

func TestLocateUsesRunningExecutable(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Skipf("executable path unavailable: %v", err)
	}

	_, err = Locate("appcenter-agent-missing")
	if !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("err = %v, want ErrTargetNotFound", err)
	}
	want := filepath.Join(filepath.Dir(exe), "appcenter-agent-missing"+ExeSuffix)
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not mention %q", err.Error(), want)
	}
}
