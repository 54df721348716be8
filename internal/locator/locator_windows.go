//go:build windows

package locator

// ExeSuffix is appended to the target name.
const ExeSuffix = ".exe"
