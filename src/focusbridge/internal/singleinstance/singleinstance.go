// Package singleinstance serializes bridge invocations across processes.
package singleinstance

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKey    = "bridge"
	_cacheDirName = "focusbridge"
	_retryDelay   = 50 * time.Millisecond
)

// Module provides the invocation Guard.
var Module = fx.Provide(New)

type lockConfig struct {
	LockFile    string        `yaml:"lockFile"`
	LockTimeout time.Duration `yaml:"lockTimeout"`
}

// Release gives up a held lock.
type Release func() error

//go:generate mockgen -destination=singleinstancemock/singleinstance_mock.go -package=singleinstancemock . Guard

// Guard hands out the invocation lock.
type Guard interface {
	// Acquire waits up to the configured timeout for the lock.
	// It returns errors.InvocationBusyError when another process keeps holding it.
	Acquire(ctx context.Context) (Release, error)
}

// Params are the dependencies of the Guard.
type Params struct {
	fx.In

	Config config.Provider
	FS     fs.BridgeFS
	Logger *zap.SugaredLogger
}

type guard struct {
	cfg    lockConfig
	fs     fs.BridgeFS
	logger *zap.SugaredLogger
}

// New creates a Guard backed by a lock file in the user cache directory.
func New(p Params) (Guard, error) {
	g := &guard{fs: p.FS, logger: p.Logger}
	if err := p.Config.Get(_configKey).Populate(&g.cfg); err != nil {
		return nil, fmt.Errorf("loading lock config: %w", err)
	}
	if g.cfg.LockFile == "" {
		return nil, &errors.InvalidConfigError{Key: "bridge.lockFile", Reason: "must not be empty"}
	}
	if g.cfg.LockTimeout < 0 {
		return nil, &errors.InvalidConfigError{Key: "bridge.lockTimeout", Reason: "must not be negative"}
	}
	return g, nil
}

func (g *guard) Acquire(ctx context.Context) (Release, error) {
	cacheDir, err := g.fs.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("locating cache directory: %w", err)
	}
	dir := filepath.Join(cacheDir, _cacheDirName)
	if err := g.fs.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, g.cfg.LockFile))
	locked, err := g.tryLock(ctx, lock)
	if err != nil && !stderrors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("locking %s: %w", lock.Path(), err)
	}
	if !locked {
		return nil, errors.InvocationBusyError
	}

	g.logger.Debugw("acquired invocation lock", "path", lock.Path())
	return lock.Unlock, nil
}

// tryLock makes a single attempt when no timeout is configured.
func (g *guard) tryLock(ctx context.Context, lock *flock.Flock) (bool, error) {
	if g.cfg.LockTimeout == 0 {
		return lock.TryLock()
	}
	ctx, cancel := context.WithTimeout(ctx, g.cfg.LockTimeout)
	defer cancel()
	return lock.TryLockContext(ctx, _retryDelay)
}
