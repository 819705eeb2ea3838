//go:build windows

package notifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

// messageBoxGateway shows a topmost message box, the same surface the desktop shell uses for short alerts.
type messageBoxGateway struct {
	logger *zap.SugaredLogger
}

func newPlatformGateway(logger *zap.SugaredLogger) Gateway {
	return &messageBoxGateway{logger: logger}
}

func (g *messageBoxGateway) ShowMessage(ctx context.Context, msg Message) error {
	title, err := windows.UTF16PtrFromString(msg.Title)
	if err != nil {
		return fmt.Errorf("encoding title: %w", err)
	}
	text, err := windows.UTF16PtrFromString(msg.Text)
	if err != nil {
		return fmt.Errorf("encoding text: %w", err)
	}

	style := uint32(windows.MB_OK | windows.MB_SETFOREGROUND | windows.MB_TOPMOST)
	if msg.Level == LevelWarning {
		style |= windows.MB_ICONWARNING
	} else {
		style |= windows.MB_ICONINFORMATION
	}

	g.logger.Debugw("showing message box", "title", msg.Title, "text", msg.Text)
	if _, err := windows.MessageBox(0, text, title, style); err != nil {
		return fmt.Errorf("showing message box: %w", err)
	}
	return nil
}
