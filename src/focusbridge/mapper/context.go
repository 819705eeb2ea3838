package mapper

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
)

// InvocationToContext returns a child context carrying the invocation id.
func InvocationToContext(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, entity.InvocationContextKey, id)
}

// ContextToInvocationID returns the invocation id stored in the context.
func ContextToInvocationID(c context.Context) (uuid.UUID, error) {
	id, ok := c.Value(entity.InvocationContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoInvocationFoundError{}
	}
	return id, nil
}
