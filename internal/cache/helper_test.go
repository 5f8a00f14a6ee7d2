package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Likes int    `json:"likes"`
	}

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "p1", payload{Name: "ink", Likes: 3}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "p1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ink", got.Name)
	assert.Equal(t, 3, got.Likes)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *int) func() error {
		return func() error {
			calls++
			*dest = 42
			return nil
		}
	}

	var v int
	require.NoError(t, Aside(ctx, "answer", &v, time.Minute, fetch(&v)))
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)

	// Second read is served from the cache.
	var v2 int
	require.NoError(t, Aside(ctx, "answer", &v2, time.Minute, fetch(&v2)))
	assert.Equal(t, 42, v2)
	assert.Equal(t, 1, calls)
}

func TestDelete(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "k1", "v", time.Minute))
	Delete(ctx, "k1")

	var got string
	found, err := GetJSON(ctx, "k1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHelpersTolerateNilClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var v int
	found, err := GetJSON(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "k", 1, time.Minute))
	Delete(ctx, "k")

	// Aside degrades to a plain fetch.
	require.NoError(t, Aside(ctx, "k", &v, time.Minute, func() error {
		v = 7
		return nil
	}))
	assert.Equal(t, 7, v)
}
