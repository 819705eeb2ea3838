// Package errors defines the error taxonomy of the focus bridge.
package errors

import (
	stderr "errors"
	"fmt"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// NoTargetPathError reports that the activator was asked to open an empty path.
	NoTargetPathError = New("target path is required")
	// InvocationBusyError reports that another invocation holds the bridge lock.
	InvocationBusyError = New("another invocation is running")
)

// WindowNotFoundError indicates that a window handle no longer refers to a live window.
type WindowNotFoundError struct {
	Handle uintptr
}

// Error is an implementation of the error interface.
func (n *WindowNotFoundError) Error() string {
	return fmt.Sprintf("window %#x not found", n.Handle)
}

// ProcessNotFoundError indicates that a process exited or cannot be queried.
type ProcessNotFoundError struct {
	ProcessID int
}

// Error is an implementation of the error interface.
func (n *ProcessNotFoundError) Error() string {
	return fmt.Sprintf("process %d not found", n.ProcessID)
}

// InstanceNotFoundError indicates that no live automation instance exists for a process.
type InstanceNotFoundError struct {
	ProcessID int
}

// Error is an implementation of the error interface.
func (n *InstanceNotFoundError) Error() string {
	return fmt.Sprintf("no automation instance for process %d", n.ProcessID)
}

// LaunchError indicates that the OS refused to start a process.
type LaunchError struct {
	Executable string
	Err        error
}

// Error is an implementation of the error interface.
func (n *LaunchError) Error() string {
	return fmt.Sprintf("launching %q: %v", n.Executable, n.Err)
}

// Unwrap returns the underlying start error.
func (n *LaunchError) Unwrap() error {
	return n.Err
}

// UnsupportedPlatformError indicates that a capability is not available on this OS.
type UnsupportedPlatformError struct {
	Capability string
}

// Error is an implementation of the error interface.
func (n *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("%s is not supported on this platform", n.Capability)
}

// InvalidConfigError indicates a missing or malformed configuration value.
type InvalidConfigError struct {
	Key    string
	Reason string
}

// Error is an implementation of the error interface.
func (n *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config %q: %s", n.Key, n.Reason)
}

// IsTransient reports whether the error is a point-in-time lookup failure
// that callers absorb as an absent value.
func IsTransient(e error) bool {
	var (
		wnf *WindowNotFoundError
		pnf *ProcessNotFoundError
		inf *InstanceNotFoundError
		ups *UnsupportedPlatformError
	)
	return stderr.As(e, &wnf) || stderr.As(e, &pnf) || stderr.As(e, &inf) || stderr.As(e, &ups)
}

// IsLaunchFailure reports whether the error chain contains a LaunchError.
func IsLaunchFailure(e error) bool {
	var le *LaunchError
	return stderr.As(e, &le)
}

// NoInvocationFoundError indicates that no invocation id is attached to the context.
type NoInvocationFoundError struct{}

// Error is an implementation of the error interface.
func (n *NoInvocationFoundError) Error() string {
	return "no invocation found in context"
}
