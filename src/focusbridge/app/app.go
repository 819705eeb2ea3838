package app

import (
	"context"
	"time"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/handler"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/clock"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/core"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/executor"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/fs"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/singleinstance"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
)

// Module defines the focus-bridge application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	fs.Module,
	clock.Module,
	executor.Module,
	singleinstance.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "focus-bridge",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)
