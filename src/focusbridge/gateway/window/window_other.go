//go:build !windows

package window

import (
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
	"go.uber.org/zap"
)

// noopInspector reports that no window is ever in the foreground.
// The bridged applications only expose their state on Windows.
type noopInspector struct {
	logger *zap.SugaredLogger
}

func newPlatformInspector(logger *zap.SugaredLogger) Inspector {
	return &noopInspector{logger: logger}
}

func (i *noopInspector) ForegroundWindow() (Handle, bool) {
	i.logger.Debug("window inspection is not supported on this platform")
	return 0, false
}

func (i *noopInspector) OwningProcess(h Handle) (int, error) {
	return 0, &errors.UnsupportedPlatformError{Capability: "window inspection"}
}

func (i *noopInspector) ProcessName(pid int) string { return "" }

func (i *noopInspector) MainWindow(pid int) (Handle, bool) { return 0, false }

func (i *noopInspector) Title(h Handle) string { return "" }

func (i *noopInspector) Visible(h Handle) bool { return false }

func (i *noopInspector) Activate(h Handle) bool { return false }
