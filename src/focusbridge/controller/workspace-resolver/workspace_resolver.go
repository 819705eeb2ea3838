// Package workspaceresolver locates files inside the live workspaces of the destination application.
package workspaceresolver

import (
	"context"
	"fmt"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/automation"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/mapper"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Controller enumerates live IDE instances and searches their project trees.
type Controller interface {
	// EnumerateInstances takes a fresh snapshot of the live instances of role.
	// The caller must Close the returned set. Roles without automation yield an empty set.
	EnumerateInstances(ctx context.Context, role entity.ApplicationRole) (*InstanceSet, error)
	// FindFileByName returns the first file of any live instance matching name, searching
	// instances in enumeration order and each tree depth-first in document order.
	// A bare name matches on the final path element, anything else must equal the full path.
	FindFileByName(ctx context.Context, role entity.ApplicationRole, name string) (entity.Resolution, bool)
}

// Instance is one bound, running IDE.
type Instance struct {
	ProcessID int
	Moniker   string
	Handle    automation.Handle
}

// InstanceSet is a point-in-time snapshot. Its handles are valid until Close.
type InstanceSet struct {
	Instances []Instance

	table automation.Table
}

// ByProcessID returns the instance owned by pid.
func (s *InstanceSet) ByProcessID(pid int) (Instance, bool) {
	if s == nil {
		return Instance{}, false
	}
	for _, inst := range s.Instances {
		if inst.ProcessID == pid {
			return inst, true
		}
	}
	return Instance{}, false
}

// Len returns the number of bound instances.
func (s *InstanceSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Instances)
}

// Close releases the snapshot. It is safe to call more than once.
func (s *InstanceSet) Close() error {
	if s == nil || s.table == nil {
		return nil
	}
	table := s.table
	s.table = nil
	s.Instances = nil
	return table.Close()
}

// Params are inbound parameters to initialize a new resolver.
type Params struct {
	fx.In

	Config   config.Provider
	Registry automation.Registry
	Logger   *zap.SugaredLogger
}

type controller struct {
	roles    entity.RolesConfig
	registry automation.Registry
	logger   *zap.SugaredLogger
}

// New creates a workspace resolver.
func New(p Params) (Controller, error) {
	c := &controller{
		registry: p.Registry,
		logger:   p.Logger,
	}
	if err := p.Config.Get(entity.RolesConfigKey).Populate(&c.roles); err != nil {
		return nil, fmt.Errorf("loading role config: %w", err)
	}
	if err := c.roles.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *controller) EnumerateInstances(ctx context.Context, role entity.ApplicationRole) (*InstanceSet, error) {
	if role != entity.RoleTreeIDE {
		return &InstanceSet{}, nil
	}
	prefix := c.roles.TreeIDE.Automation.MonikerPrefix

	table, err := c.registry.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening automation registry: %w", err)
	}

	monikers, err := table.Monikers(ctx, prefix)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("listing automation monikers: %w", err), table.Close())
	}

	set := &InstanceSet{table: table}
	var skipped error
	for _, moniker := range monikers {
		pid, ok := mapper.MonikerToProcessID(moniker, prefix)
		if !ok {
			skipped = multierr.Append(skipped, fmt.Errorf("moniker %q carries no process id", moniker))
			continue
		}
		h, err := table.Bind(ctx, moniker)
		if err != nil {
			skipped = multierr.Append(skipped, fmt.Errorf("binding %q: %w", moniker, err))
			continue
		}
		set.Instances = append(set.Instances, Instance{ProcessID: pid, Moniker: moniker, Handle: h})
	}

	if skipped != nil {
		c.logger.Warnw("skipped automation entries", "skipped", len(multierr.Errors(skipped)), "error", skipped)
	}
	c.logger.Debugw("enumerated automation instances", "role", role.String(), "instances", len(set.Instances))
	return set, nil
}

func (c *controller) FindFileByName(ctx context.Context, role entity.ApplicationRole, name string) (entity.Resolution, bool) {
	if role != entity.RoleTreeIDE || name == "" {
		return entity.Resolution{}, false
	}

	set, err := c.EnumerateInstances(ctx, role)
	if err != nil {
		c.logger.Warnw("enumerating instances", "error", err)
		return entity.Resolution{}, false
	}
	defer c.closeSet(set)

	match := matcher(name)
	for _, inst := range set.Instances {
		tree, err := inst.Handle.Workspace(ctx)
		if err != nil {
			// A partially read tree is still searched.
			c.logger.Warnw("reading workspace", "pid", inst.ProcessID, "error", err)
		}
		if p, ok := tree.FindFile(match); ok {
			c.logger.Debugw("resolved file", "name", name, "path", p, "pid", inst.ProcessID)
			return entity.Resolution{Path: p, ProcessID: inst.ProcessID}, true
		}
	}
	return entity.Resolution{}, false
}

func (c *controller) closeSet(set *InstanceSet) {
	if err := set.Close(); err != nil {
		c.logger.Warnw("releasing automation instances", "error", err)
	}
}

// matcher compares case-sensitively, exactly as the host reports file names.
func matcher(name string) func(string) bool {
	if mapper.IsBareFileName(name) {
		return func(p string) bool {
			return mapper.BaseName(p) == name
		}
	}
	return func(p string) bool {
		return p == name
	}
}
