package executor

import (
	"errors"
	"os"
	"os/exec"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a module to inject using fx.
var Module = fx.Provide(func(logger *zap.SugaredLogger) Executor {
	return NewExecutor(WithLogger(logger))
})

//go:generate mockgen -destination=executormock/executor_mock.go -package=executormock . Executor

// Executor wraps the launching of "os/exec".Cmd's to allow adding logs to
// each launch and makes it easier to test.
type Executor interface {
	// Start logs and starts the Cmd specified without waiting for it to exit.
	// It returns the process id of the started process.
	Start(cmd *exec.Cmd) (pid int, err error)
}

// executorImp implements Executor
type executorImp struct {
	Logger    *zap.SugaredLogger
	StartFunc func(cmd *exec.Cmd) (int, error)
	// releaseFunc detaches a started process.
	releaseFunc func(p *os.Process) error
}

// MissingStartFuncError is returned by Start when no start function is configured.
var MissingStartFuncError = errors.New("missing StartFunc - skipped execution")

// Option defines options to customize executorImp's behavior
type Option func(*executorImp)

// WithLogger overrides the default noop logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(executor *executorImp) {
		executor.Logger = logger
	}
}

// WithStartFunc provides customized start behavior for executorImp
func WithStartFunc(startFunc func(cmd *exec.Cmd) (int, error)) Option {
	return func(executor *executorImp) {
		executor.StartFunc = startFunc
	}
}

// NewExecutor creates a new executorImp with a noop logger and a default start function
// that detaches from the started process.
func NewExecutor(opts ...Option) Executor {
	executor := &executorImp{
		Logger:      zap.NewNop().Sugar(),
		releaseFunc: (*os.Process).Release,
	}
	executor.StartFunc = executor.startDetached
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

// Start logs the Path/Args and calls StartFunc. Without a StartFunc nothing is launched
// and MissingStartFuncError is returned.
func (l *executorImp) Start(cmd *exec.Cmd) (int, error) {
	l.logCommand(cmd)

	if l.StartFunc == nil {
		l.Logger.Warn(MissingStartFuncError.Error())
		return 0, MissingStartFuncError
	}

	return l.StartFunc(cmd)
}

// Logs the command specified: Path, Dir, Args
func (l *executorImp) logCommand(cmd *exec.Cmd) {
	args := []string{}
	if len(cmd.Args) > 1 {
		args = cmd.Args[1:] // First arg is always the command itself
	}
	l.Logger.Infow("Exec",
		"Path", cmd.Path,
		"Dir", cmd.Dir,
		"Args", args,
	)
}

// startDetached starts the process and releases it, the bridge never waits for launched applications.
// The process has started even when releasing it fails.
func (l *executorImp) startDetached(cmd *exec.Cmd) (int, error) {
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	if err := l.releaseFunc(cmd.Process); err != nil {
		l.Logger.Warnw("releasing started process", "pid", pid, "error", err)
	}
	return pid, nil
}
