package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/nikmy/intersched/internal/availability"
	"github.com/nikmy/intersched/internal/matcher"
	"github.com/nikmy/intersched/pkg/logger"
)

func setupCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewWithClient(rdb, Config{TTL: time.Minute, Prefix: "test"}, logger.NewStub()), mr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	matched := matcher.Result{
		Kind:  matcher.Matched,
		Slots: availability.Availability{availability.Monday: {9, 10}},
	}
	failed := matcher.Result{
		Kind:        matcher.NoCommonSlots,
		Day:         availability.Tuesday,
		Interviewer: 1,
	}

	t.Run("miss", func(t *testing.T) {
		c, _ := setupCache(t)

		res, version, err := c.Get(ctx, 1, 2)
		require.NoError(t, err)
		require.Nil(t, res)
		require.Zero(t, version)
	})

	t.Run("put then get", func(t *testing.T) {
		c, mr := setupCache(t)

		require.NoError(t, c.Put(ctx, 1, 2, 0, matched))
		require.NoError(t, c.Put(ctx, 1, 3, 0, failed))

		res, _, err := c.Get(ctx, 1, 2)
		require.NoError(t, err)
		require.Equal(t, &matched, res)

		res, _, err = c.Get(ctx, 1, 3)
		require.NoError(t, err)
		require.Equal(t, &failed, res)

		require.Equal(t, time.Minute, mr.TTL("test:match:1:0:2"))
	})

	t.Run("invalidate drops only that job", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.Put(ctx, 1, 2, 0, matched))
		require.NoError(t, c.Put(ctx, 5, 2, 0, matched))
		require.NoError(t, c.Invalidate(ctx, 1))

		res, version, err := c.Get(ctx, 1, 2)
		require.NoError(t, err)
		require.Nil(t, res)
		require.Equal(t, int64(1), version)

		res, _, err = c.Get(ctx, 5, 2)
		require.NoError(t, err)
		require.NotNil(t, res)
	})

	t.Run("put under outdated version is not served", func(t *testing.T) {
		c, _ := setupCache(t)

		_, version, err := c.Get(ctx, 1, 2)
		require.NoError(t, err)

		require.NoError(t, c.Invalidate(ctx, 1))
		require.NoError(t, c.Put(ctx, 1, 2, version, matched))

		res, _, err := c.Get(ctx, 1, 2)
		require.NoError(t, err)
		require.Nil(t, res)
	})

	t.Run("corrupted entry is a miss", func(t *testing.T) {
		c, mr := setupCache(t)
		require.NoError(t, mr.Set("test:match:1:0:2", "{"))

		res, _, err := c.Get(ctx, 1, 2)
		require.NoError(t, err)
		require.Nil(t, res)
	})

	t.Run("redis down", func(t *testing.T) {
		c, mr := setupCache(t)
		mr.Close()

		_, _, err := c.Get(ctx, 1, 2)
		require.Error(t, err)
	})
}
