//go:build !windows

package automation

import (
	"context"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
	"go.uber.org/zap"
)

// emptyRegistry stands in where no running object table exists: every snapshot is empty.
type emptyRegistry struct {
	logger *zap.SugaredLogger
}

func newPlatformRegistry(logger *zap.SugaredLogger) Registry {
	return &emptyRegistry{logger: logger}
}

func (r *emptyRegistry) Open(ctx context.Context) (Table, error) {
	r.logger.Debug("automation registry unavailable on this platform, using an empty table")
	return emptyTable{}, nil
}

type emptyTable struct{}

func (emptyTable) Monikers(ctx context.Context, prefix string) ([]string, error) {
	return nil, nil
}

func (emptyTable) Bind(ctx context.Context, moniker string) (Handle, error) {
	return nil, &errors.UnsupportedPlatformError{Capability: "automation binding"}
}

func (emptyTable) Close() error {
	return nil
}
