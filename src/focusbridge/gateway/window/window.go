// Package window inspects and signals top-level desktop windows.
package window

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the platform Inspector.
var Module = fx.Provide(New)

// Handle is an opaque top-level window handle. The zero value is no window.
type Handle uintptr

//go:generate mockgen -destination=windowmock/window_mock.go -package=windowmock . Inspector

// Inspector wraps the OS window and process primitives.
// Every call is best-effort and point-in-time: a window destroyed or a process exited mid-query
// yields the absent value (or a transient error for OwningProcess) and is never retried.
type Inspector interface {
	// ForegroundWindow returns the window that currently has focus.
	ForegroundWindow() (Handle, bool)
	// OwningProcess returns the id of the process that created the window.
	OwningProcess(h Handle) (int, error)
	// ProcessName returns the executable name of a process without directory or extension, or "".
	ProcessName(pid int) string
	// MainWindow returns the first visible unowned top-level window of a process.
	MainWindow(pid int) (Handle, bool)
	// Title returns the window title, or "".
	Title(h Handle) string
	// Visible reports whether the window is visible.
	Visible(h Handle) bool
	// Activate restores the window if minimized and brings it to the foreground.
	Activate(h Handle) bool
}

// Params are the dependencies of the platform Inspector.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
}

// New returns the Inspector for the current platform.
func New(p Params) Inspector {
	return newPlatformInspector(p.Logger)
}
