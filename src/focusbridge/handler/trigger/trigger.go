// Package trigger runs one bridge invocation per process start.
package trigger

import (
	"context"
	stderrors "errors"
	"runtime"

	"github.com/gofrs/uuid"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/controller/bridge"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/singleinstance"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/mapper"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// ExitOK is returned for every expected outcome, including the user-facing failures.
	ExitOK = 0
	// ExitFailure is returned after an unexpected failure.
	ExitFailure = 1
)

// Handler is the inbound side of the application: the user trigger.
type Handler interface {
	// Trigger runs a single serialized invocation and returns the process exit code.
	Trigger(ctx context.Context) int
}

// Params are inbound parameters to initialize the trigger handler.
type Params struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Bridge     bridge.Controller
	Guard      singleinstance.Guard
	Stats      tally.Scope
	Logger     *zap.SugaredLogger
}

type handler struct {
	bridge     bridge.Controller
	guard      singleinstance.Guard
	shutdowner fx.Shutdowner
	stats      tally.Scope
	logger     *zap.SugaredLogger
	done       chan struct{}
}

// New creates the trigger handler. The invocation starts once the application has started
// and the application shuts itself down with the invocation's exit code.
func New(p Params) Handler {
	h := &handler{
		bridge:     p.Bridge,
		guard:      p.Guard,
		shutdowner: p.Shutdowner,
		stats:      p.Stats.SubScope("trigger"),
		logger:     p.Logger,
		done:       make(chan struct{}),
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: h.start,
		OnStop:  h.stop,
	})
	return h
}

func (h *handler) start(ctx context.Context) error {
	go h.serve()
	return nil
}

// serve pins the invocation to one OS thread: automation objects may only be used
// from the thread that initialized them.
func (h *handler) serve() {
	defer close(h.done)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	code := h.Trigger(context.Background())
	if err := h.shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
		h.logger.Errorw("requesting shutdown", "error", err)
	}
}

func (h *handler) stop(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *handler) Trigger(ctx context.Context) int {
	id, err := uuid.NewV4()
	if err != nil {
		h.logger.Errorw("generating invocation id", "error", err)
		return ExitFailure
	}
	ctx = mapper.InvocationToContext(ctx, id)
	logger := h.logger.With("invocation", id.String())

	release, err := h.guard.Acquire(ctx)
	switch {
	case stderrors.Is(err, errors.InvocationBusyError):
		h.stats.Counter("busy").Inc(1)
		logger.Warnw("skipping invocation", "error", err)
		return ExitOK
	case err != nil:
		logger.Warnw("running without the invocation lock", "error", err)
	default:
		defer func() {
			if err := release(); err != nil {
				logger.Warnw("releasing invocation lock", "error", err)
			}
		}()
	}

	h.stats.Counter("invocations").Inc(1)
	return ExitCode(h.bridge.Run(ctx))
}

// ExitCode maps a terminal outcome to the process exit code.
func ExitCode(out entity.Outcome) int {
	if out.State == entity.StateFailed {
		return ExitFailure
	}
	return ExitOK
}
