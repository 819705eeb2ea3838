package controller

import (
	"github.com/johnkslg/CursorVSSync/src/focusbridge/controller/activator"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/controller/bridge"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/controller/classifier"
	documentcontext "github.com/johnkslg/CursorVSSync/src/focusbridge/controller/document-context"
	workspaceresolver "github.com/johnkslg/CursorVSSync/src/focusbridge/controller/workspace-resolver"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(classifier.New),
	fx.Provide(documentcontext.New),
	fx.Provide(workspaceresolver.New),
	fx.Provide(activator.New),
	fx.Provide(bridge.New),
)
