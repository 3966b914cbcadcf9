package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewCache(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	payload := []byte("id,name\nstd,Standard\n")
	require.NoError(t, c.Set(ctx, "sheet:rooms", payload, time.Minute))

	got, err := c.Get(ctx, "sheet:rooms")
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestCache_MissReturnsErrMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.Get(context.Background(), "sheet:absent")
	require.ErrorIs(t, err, ErrMiss)
}

func TestCache_ExpiredKeyMisses(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "sheet:rules", []byte("csv"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "sheet:rules")
	require.ErrorIs(t, err, ErrMiss)
}

func TestCache_DeleteAndExists(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

	ok, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, c.Delete(ctx, "k"))

	ok, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}
