package alog_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/userposts/alog"
)

func TestAddAttr(t *testing.T) {
	t.Parallel()

	t.Run("add first attribute", func(t *testing.T) {
		t.Parallel()

		newCtx := alog.AddAttr(ctx, slog.String("some", "attr"))

		attrs, ok := alog.FromContext(newCtx)
		assert.True(t, ok)
		assert.Equal(t, []slog.Attr{slog.String("some", "attr")}, attrs)
	})

	t.Run("append attributes", func(t *testing.T) {
		t.Parallel()

		first := alog.AddAttr(ctx, slog.String("some", "attr"))
		second := alog.AddAttr(first, slog.Int("other", 1))

		attrs, _ := alog.FromContext(second)
		assert.Len(t, attrs, 2)

		attrs, _ = alog.FromContext(first)
		assert.Len(t, attrs, 1, "parent ctx is unchanged")
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	attrs, ok := alog.FromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, attrs)
}
