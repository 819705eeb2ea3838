// Package notifier surfaces bridge outcomes to the user.
package notifier

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the platform notification Gateway.
var Module = fx.Provide(New)

// Level is the severity shown with a message.
type Level int

const (
	// LevelInfo is used for expected outcomes such as "nothing to do".
	LevelInfo Level = iota
	// LevelWarning is used when an action was attempted and failed.
	LevelWarning
)

// Message is one user-facing notification.
type Message struct {
	Title string
	Text  string
	Level Level
}

//go:generate mockgen -destination=notifiermock/notifier_mock.go -package=notifiermock . Gateway

// Gateway shows notifications. ShowMessage returns once the message has been displayed or dismissed.
type Gateway interface {
	ShowMessage(ctx context.Context, msg Message) error
}

// Params are the dependencies of the notification Gateway.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
}

// New returns the notification Gateway for the current platform.
func New(p Params) Gateway {
	return newPlatformGateway(p.Logger)
}
