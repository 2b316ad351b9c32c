package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	server := miniredis.RunT(t)
	ctx := context.Background()

	c, err := New(ctx, server.Addr(), 10*time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var missed payload
	found, err := c.GetJSON(ctx, "k", &missed)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "sales", Count: 3}))

	var got payload
	found, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, payload{Name: "sales", Count: 3}, got)
}

func TestCacheExpiry(t *testing.T) {
	server := miniredis.RunT(t)
	ctx := context.Background()

	c, err := New(ctx, server.Addr(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.SetJSON(ctx, "k", "v"))
	server.FastForward(2 * time.Minute)

	var got string
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestNilCacheIsAlwaysMiss(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var got string
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, c.SetJSON(ctx, "k", "v"))
	require.NoError(t, c.Close())
}

func TestCorruptEntryCountsAsMiss(t *testing.T) {
	server := miniredis.RunT(t)
	ctx := context.Background()

	c, err := New(ctx, server.Addr(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, server.Set("k", "{not json"))

	var got map[string]any
	found, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, found)
}
