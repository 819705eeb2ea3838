// Package gateway groups the outbound capabilities of the focus bridge.
package gateway

import (
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/automation"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/notifier"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/window"
	"go.uber.org/fx"
)

// Module provides every platform gateway.
var Module = fx.Options(
	window.Module,
	automation.Module,
	notifier.Module,
)
