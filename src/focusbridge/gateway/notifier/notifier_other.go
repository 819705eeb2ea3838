//go:build !windows

package notifier

import (
	"context"

	"go.uber.org/zap"
)

// logGateway writes notifications to the log where no message box is available.
type logGateway struct {
	logger *zap.SugaredLogger
}

func newPlatformGateway(logger *zap.SugaredLogger) Gateway {
	return &logGateway{logger: logger}
}

func (g *logGateway) ShowMessage(ctx context.Context, msg Message) error {
	log := g.logger.Infow
	if msg.Level == LevelWarning {
		log = g.logger.Warnw
	}
	log(msg.Text, "title", msg.Title, "notification", true)
	return nil
}
