package mapper

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextToInvocationID(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		id := uuid.Must(uuid.NewV4())
		got, err := ContextToInvocationID(InvocationToContext(context.Background(), id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("missing", func(t *testing.T) {
		got, err := ContextToInvocationID(context.Background())
		var nf *errors.NoInvocationFoundError
		assert.ErrorAs(t, err, &nf)
		assert.Equal(t, uuid.Nil, got)
	})
}
