//go:build !windows

package locator

// ExeSuffix is appended to the target name; executables carry no suffix here.
const ExeSuffix = ""
