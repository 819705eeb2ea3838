// Package automation reaches live IDE instances through the system-wide running object registry.
package automation

import (
	"context"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the platform Registry.
var Module = fx.Provide(New)

//go:generate mockgen -destination=automationmock/automation_mock.go -package=automationmock . Registry,Table,Handle

// Registry opens snapshots of the live automation object table.
type Registry interface {
	// Open acquires the table. The caller must Close it on every exit path.
	Open(ctx context.Context) (Table, error)
}

// Table is one acquired snapshot of the registry.
// Handles bound from a table are only valid until the table is closed.
type Table interface {
	// Monikers lists the display names of registered objects whose name starts with prefix.
	Monikers(ctx context.Context, prefix string) ([]string, error)
	// Bind resolves a moniker returned by Monikers to an automation handle.
	Bind(ctx context.Context, moniker string) (Handle, error)
	// Close releases every object acquired through this table.
	Close() error
}

// Handle is a bound IDE automation object.
type Handle interface {
	// ActiveDocument reads the active document path, the caret line and the workspace root.
	// Absent values are left empty.
	ActiveDocument(ctx context.Context) (entity.DocumentContext, error)
	// Workspace builds the current project tree. A nil node means no workspace is loaded.
	Workspace(ctx context.Context) (*entity.WorkspaceNode, error)
	// OpenFile opens a file in the IDE editor.
	OpenFile(ctx context.Context, path string) error
}

// Params are the dependencies of the platform Registry.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
}

// New returns the Registry for the current platform.
func New(p Params) Registry {
	return newPlatformRegistry(p.Logger)
}
