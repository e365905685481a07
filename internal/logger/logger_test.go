package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("unknown principal", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "unknown", l.Data["user"])
		_, hasRequestID := l.Data["request_id"]
		assert.False(t, hasRequestID)
	})

	t.Run("principal and request id", func(t *testing.T) {
		ctx := ContextWithPrincipal(context.Background(), "7d1f")
		ctx = ContextWithRequestID(ctx, "req-1")

		l := WithContext(ctx)
		assert.Equal(t, "7d1f", l.Data["user"])
		assert.Equal(t, "req-1", l.Data["request_id"])
	})

	t.Run("empty principal is ignored", func(t *testing.T) {
		_, ok := PrincipalFromContext(ContextWithPrincipal(context.Background(), ""))
		assert.False(t, ok)
	})
}

func TestFieldHelpers(t *testing.T) {
	l := New().WithField("recipe_id", "r1").WithFields(map[string]interface{}{"mode": "keep_data"}).WithError(errors.New("boom"))
	assert.Equal(t, "r1", l.Data["recipe_id"])
	assert.Equal(t, "keep_data", l.Data["mode"])
	assert.NotNil(t, l.Data["error"])
}
