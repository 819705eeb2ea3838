// Package activator drives the destination application to a location and raises its window.
package activator

import (
	"context"
	"fmt"
	"os/exec"

	workspaceresolver "github.com/johnkslg/CursorVSSync/src/focusbridge/controller/workspace-resolver"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/window"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/executor"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/mapper"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Controller opens targets in, and focuses, the destination application.
type Controller interface {
	// Open asks dest to show target and returns the process that handled the request.
	// Editor launches are fire-and-forget: success means the OS started the launcher.
	Open(ctx context.Context, dest entity.ApplicationRole, target entity.Target) (int, error)
	// Focus raises the main window of pid. It is best-effort.
	Focus(ctx context.Context, pid int) bool
}

// Params are inbound parameters to initialize a new activator.
type Params struct {
	fx.In

	Config   config.Provider
	Executor executor.Executor
	Resolver workspaceresolver.Controller
	Window   window.Inspector
	Logger   *zap.SugaredLogger
}

type controller struct {
	roles    entity.RolesConfig
	executor executor.Executor
	resolver workspaceresolver.Controller
	window   window.Inspector
	logger   *zap.SugaredLogger
}

// New creates an activator.
func New(p Params) (Controller, error) {
	c := &controller{
		executor: p.Executor,
		resolver: p.Resolver,
		window:   p.Window,
		logger:   p.Logger,
	}
	if err := p.Config.Get(entity.RolesConfigKey).Populate(&c.roles); err != nil {
		return nil, fmt.Errorf("loading role config: %w", err)
	}
	return c, nil
}

func (c *controller) Open(ctx context.Context, dest entity.ApplicationRole, target entity.Target) (int, error) {
	if target.Path == "" {
		return 0, errors.NoTargetPathError
	}

	switch dest {
	case entity.RoleFlatEditor:
		return c.launchEditor(target)
	case entity.RoleTreeIDE:
		return c.openInIDE(ctx, target)
	default:
		return 0, fmt.Errorf("no way to open files in %s", dest)
	}
}

// EditorArgs builds the editor command line: the workspace folder with the reuse directive,
// then the file with the go-to directive when a line is known.
func EditorArgs(launcher entity.LauncherConfig, target entity.Target) []string {
	var args []string
	root := target.WorkspaceRoot
	if root == "" {
		root = mapper.DirName(target.Path)
	}
	if root != "" {
		if launcher.ReuseWindowFlag != "" {
			args = append(args, launcher.ReuseWindowFlag)
		}
		args = append(args, root)
	}

	if target.Line > 0 && launcher.GotoFlag != "" {
		return append(args, launcher.GotoFlag, mapper.GotoTarget(target.Path, target.Line))
	}
	return append(args, target.Path)
}

func (c *controller) launchEditor(target entity.Target) (int, error) {
	launcher := c.roles.FlatEditor.Launcher
	cmd := exec.Command(launcher.Executable, EditorArgs(launcher, target)...)
	configureLaunch(cmd)

	pid, err := c.executor.Start(cmd)
	if err != nil {
		return 0, &errors.LaunchError{Executable: launcher.Executable, Err: err}
	}
	return pid, nil
}

func (c *controller) openInIDE(ctx context.Context, target entity.Target) (int, error) {
	set, err := c.resolver.EnumerateInstances(ctx, entity.RoleTreeIDE)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := set.Close(); err != nil {
			c.logger.Warnw("releasing automation instances", "error", err)
		}
	}()

	inst, ok := set.ByProcessID(target.ProcessID)
	if !ok {
		return 0, &errors.InstanceNotFoundError{ProcessID: target.ProcessID}
	}
	if err := inst.Handle.OpenFile(ctx, target.Path); err != nil {
		return 0, fmt.Errorf("opening %q in process %d: %w", target.Path, inst.ProcessID, err)
	}
	return inst.ProcessID, nil
}

func (c *controller) Focus(ctx context.Context, pid int) bool {
	hwnd, ok := c.window.MainWindow(pid)
	if !ok {
		c.logger.Debugw("process has no main window", "pid", pid)
		return false
	}

	owner, err := c.window.OwningProcess(hwnd)
	if err != nil || owner != pid {
		c.logger.Debugw("main window changed owner before activation", "pid", pid, "owner", owner, "error", err)
		return false
	}
	return c.window.Activate(hwnd)
}
