// Package classifier decides which bridge role the foreground window belongs to.
package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/window"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/mapper"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Controller classifies the active application.
type Controller interface {
	// ClassifyForeground returns the role and process of the foreground window,
	// or false when it belongs to no registered role.
	ClassifyForeground(ctx context.Context) (entity.ProcessHandle, bool)
}

// Params are inbound parameters to initialize a new classifier.
type Params struct {
	fx.In

	Config config.Provider
	Window window.Inspector
	Logger *zap.SugaredLogger
}

type controller struct {
	roles  entity.RolesConfig
	window window.Inspector
	logger *zap.SugaredLogger
}

// New creates a classifier from the configured role patterns.
func New(p Params) (Controller, error) {
	c := &controller{
		window: p.Window,
		logger: p.Logger,
	}
	if err := p.Config.Get(entity.RolesConfigKey).Populate(&c.roles); err != nil {
		return nil, fmt.Errorf("loading role config: %w", err)
	}
	if err := c.roles.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *controller) ClassifyForeground(ctx context.Context) (entity.ProcessHandle, bool) {
	hwnd, ok := c.window.ForegroundWindow()
	if !ok {
		c.logger.Debug("no foreground window")
		return entity.ProcessHandle{}, false
	}

	pid, err := c.window.OwningProcess(hwnd)
	if err != nil {
		if errors.IsTransient(err) {
			c.logger.Debugw("foreground window vanished", "error", err)
		} else {
			c.logger.Warnw("resolving foreground window owner", "error", err)
		}
		return entity.ProcessHandle{}, false
	}

	// Exact process names are checked for every role before any title fallback.
	if name := c.window.ProcessName(pid); name != "" {
		for _, role := range entity.Roles() {
			if strings.EqualFold(name, c.roles.Match(role).ProcessName) {
				c.logger.Debugw("classified by process name", "role", role.String(), "pid", pid, "processName", name)
				return entity.ProcessHandle{ProcessID: pid, Role: role}, true
			}
		}
	}

	title := c.window.Title(hwnd)
	for _, role := range entity.Roles() {
		if mapper.ContainsFold(title, c.roles.Match(role).TitleMarker) {
			c.logger.Debugw("classified by window title", "role", role.String(), "pid", pid, "title", title)
			return entity.ProcessHandle{ProcessID: pid, Role: role}, true
		}
	}

	c.logger.Debugw("foreground window matches no role", "pid", pid, "title", title)
	return entity.ProcessHandle{}, false
}
