//go:build integration

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pass-config-engine/internal/infra/cache"
	"pass-config-engine/tests/common/builder"
	"pass-config-engine/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftCache(t *testing.T) {
	ctx := context.Background()
	client := dbtest.StartRedis(t)
	c := cache.NewDraftCache(client, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("put then get", func(t *testing.T) {
		d := builder.NewDraftBuilder().Complete().MustBuild()
		require.NoError(t, c.Put(ctx, d))

		got, ok, err := c.Get(ctx, d.SessionID())
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, got.AllComplete())

		ttl, err := client.TTL(ctx, "draft:"+d.SessionID()).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 59*time.Minute)
	})

	t.Run("missing session", func(t *testing.T) {
		_, ok, err := c.Get(ctx, "never-stored")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unreadable entry is dropped", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "draft:garbled", "{", time.Hour).Err())
		_, ok, err := c.Get(ctx, "garbled")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, client.Exists(ctx, "draft:garbled").Val())
	})

	t.Run("pending set keeps first-marked order", func(t *testing.T) {
		require.NoError(t, c.MarkPending(ctx, "a"))
		time.Sleep(2 * time.Millisecond)
		require.NoError(t, c.MarkPending(ctx, "b"))
		time.Sleep(2 * time.Millisecond)
		require.NoError(t, c.MarkPending(ctx, "a"))

		ids, err := c.ListPending(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids)

		one, err := c.ListPending(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, one)

		pending, err := c.IsPending(ctx, "b")
		require.NoError(t, err)
		assert.True(t, pending)

		require.NoError(t, c.ClearPending(ctx, "b"))
		pending, err = c.IsPending(ctx, "b")
		require.NoError(t, err)
		assert.False(t, pending)
	})

	t.Run("delete removes the copy and the pending marker", func(t *testing.T) {
		d := builder.NewDraftBuilder().MustBuild()
		require.NoError(t, c.Put(ctx, d))
		require.NoError(t, c.MarkPending(ctx, d.SessionID()))

		require.NoError(t, c.Delete(ctx, d.SessionID()))

		_, ok, err := c.Get(ctx, d.SessionID())
		require.NoError(t, err)
		assert.False(t, ok)
		pending, err := c.IsPending(ctx, d.SessionID())
		require.NoError(t, err)
		assert.False(t, pending)
	})
}
