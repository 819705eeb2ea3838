// Package documentcontext extracts the active document reference from the source application.
package documentcontext

import (
	"context"
	"fmt"

	workspaceresolver "github.com/johnkslg/CursorVSSync/src/focusbridge/controller/workspace-resolver"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/window"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/mapper"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Controller reads the document context of a classified application.
type Controller interface {
	// Extract never fails: lookup errors are logged and yield absent fields.
	Extract(ctx context.Context, source entity.ProcessHandle) entity.DocumentContext
}

// Params are inbound parameters to initialize a new extractor.
type Params struct {
	fx.In

	Config   config.Provider
	Window   window.Inspector
	Resolver workspaceresolver.Controller
	Logger   *zap.SugaredLogger
}

type controller struct {
	roles    entity.RolesConfig
	window   window.Inspector
	resolver workspaceresolver.Controller
	logger   *zap.SugaredLogger
}

// New creates a document context extractor.
func New(p Params) (Controller, error) {
	c := &controller{
		window:   p.Window,
		resolver: p.Resolver,
		logger:   p.Logger,
	}
	if err := p.Config.Get(entity.RolesConfigKey).Populate(&c.roles); err != nil {
		return nil, fmt.Errorf("loading role config: %w", err)
	}
	return c, nil
}

func (c *controller) Extract(ctx context.Context, source entity.ProcessHandle) entity.DocumentContext {
	switch source.Role {
	case entity.RoleTreeIDE:
		return c.fromAutomation(ctx, source.ProcessID)
	case entity.RoleFlatEditor:
		return c.fromTitle(source.ProcessID)
	default:
		return entity.DocumentContext{}
	}
}

func (c *controller) fromAutomation(ctx context.Context, pid int) entity.DocumentContext {
	set, err := c.resolver.EnumerateInstances(ctx, entity.RoleTreeIDE)
	if err != nil {
		c.logger.Warnw("enumerating instances", "pid", pid, "error", err)
		return entity.DocumentContext{}
	}
	defer func() {
		if err := set.Close(); err != nil {
			c.logger.Warnw("releasing automation instances", "error", err)
		}
	}()

	inst, ok := set.ByProcessID(pid)
	if !ok {
		c.logger.Warnw("no automation instance for the active process", "pid", pid, "instances", set.Len())
		return entity.DocumentContext{}
	}

	doc, err := inst.Handle.ActiveDocument(ctx)
	if err != nil {
		c.logger.Warnw("reading active document", "pid", pid, "error", err)
		return entity.DocumentContext{}
	}
	return doc
}

// fromTitle prefers the foreground window, which is the one the user triggered from.
func (c *controller) fromTitle(pid int) entity.DocumentContext {
	hwnd, ok := c.window.ForegroundWindow()
	if !ok {
		if hwnd, ok = c.window.MainWindow(pid); !ok {
			return entity.DocumentContext{}
		}
	}

	title := c.window.Title(hwnd)
	name, ok := mapper.TitleToFileName(title, c.roles.FlatEditor.TitleMarker)
	if !ok {
		c.logger.Debugw("window title carries no file name", "pid", pid, "title", title)
		return entity.DocumentContext{}
	}
	return entity.DocumentContext{FilePath: name}
}
