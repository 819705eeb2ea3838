package handler

import (
	"github.com/johnkslg/CursorVSSync/src/focusbridge/controller"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/handler/trigger"
	"go.uber.org/fx"
)

// Module provides the focus bridge trigger into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(trigger.New),
	fx.Invoke(func(trigger.Handler) {}),
)
