// Package helpers provides an in-memory automation registry for controller tests.
package helpers

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/automation"
)

// Instance is one fake running IDE.
type Instance struct {
	ProcessID int
	Document  entity.DocumentContext
	Workspace *entity.WorkspaceNode
	// DocumentErr and OpenErr are returned by ActiveDocument and OpenFile.
	DocumentErr error
	OpenErr     error
	// Unbindable instances are listed but fail to bind.
	Unbindable bool
	// Moniker overrides the generated "<prefix>.17.0:<pid>" display name.
	Moniker string

	mu     sync.Mutex
	opened []string
}

// Opened returns the paths passed to OpenFile, in call order.
func (i *Instance) Opened() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string(nil), i.opened...)
}

// Registry is a fake automation.Registry that tracks table lifecycles.
type Registry struct {
	Prefix    string
	Instances []*Instance
	// OpenErr is returned by Open.
	OpenErr error

	mu     sync.Mutex
	opened int
	closed int
}

var _ automation.Registry = (*Registry)(nil)

// NewRegistry returns a registry listing the instances in order.
func NewRegistry(prefix string, instances ...*Instance) *Registry {
	return &Registry{Prefix: prefix, Instances: instances}
}

// Open implements automation.Registry.
func (r *Registry) Open(ctx context.Context) (automation.Table, error) {
	if r.OpenErr != nil {
		return nil, r.OpenErr
	}
	r.mu.Lock()
	r.opened++
	r.mu.Unlock()
	return &table{registry: r}, nil
}

// Balanced reports whether every opened table was closed exactly once.
func (r *Registry) Balanced() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opened == r.closed
}

// Opens returns the number of tables opened so far.
func (r *Registry) Opens() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opened
}

func (r *Registry) moniker(i *Instance) string {
	if i.Moniker != "" {
		return i.Moniker
	}
	return fmt.Sprintf("%s.17.0:%d", r.Prefix, i.ProcessID)
}

type table struct {
	registry *Registry
	closed   bool
}

func (t *table) Monikers(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	for _, i := range t.registry.Instances {
		if name := t.registry.moniker(i); strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

func (t *table) Bind(ctx context.Context, moniker string) (automation.Handle, error) {
	if t.closed {
		return nil, fmt.Errorf("table closed")
	}
	for _, i := range t.registry.Instances {
		if t.registry.moniker(i) != moniker {
			continue
		}
		if i.Unbindable {
			return nil, fmt.Errorf("binding %q: object not available", moniker)
		}
		return &handle{instance: i}, nil
	}
	return nil, fmt.Errorf("moniker %q not registered", moniker)
}

func (t *table) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.registry.mu.Lock()
	t.registry.closed++
	t.registry.mu.Unlock()
	return nil
}

type handle struct {
	instance *Instance
}

func (h *handle) ActiveDocument(ctx context.Context) (entity.DocumentContext, error) {
	if h.instance.DocumentErr != nil {
		return entity.DocumentContext{}, h.instance.DocumentErr
	}
	return h.instance.Document, nil
}

func (h *handle) Workspace(ctx context.Context) (*entity.WorkspaceNode, error) {
	return h.instance.Workspace, nil
}

func (h *handle) OpenFile(ctx context.Context, path string) error {
	if h.instance.OpenErr != nil {
		return h.instance.OpenErr
	}
	h.instance.mu.Lock()
	h.instance.opened = append(h.instance.opened, path)
	h.instance.mu.Unlock()
	return nil
}
