package main

import (
	"github.com/johnkslg/CursorVSSync/src/focusbridge/app"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func opts() fx.Option {
	return fx.Options(
		app.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)
}

func main() {
	// Run returns after the trigger handler requests shutdown and exits with its code.
	fx.New(opts()).Run()
}
