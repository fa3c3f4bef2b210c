package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClientSetGet(t *testing.T) {
	c := NewMemoryClient(10)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("v1"), time.Minute))

	val, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), val)
}

func TestMemoryClientMiss(t *testing.T) {
	c := NewMemoryClient(10)
	defer c.Close()

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClientExpiry(t *testing.T) {
	c := NewMemoryClient(10)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("v1"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClientDelete(t *testing.T) {
	c := NewMemoryClient(10)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("v1"), time.Minute))
	require.NoError(t, c.Delete(ctx, "k1"))

	_, err := c.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClientDeleteByPrefix(t *testing.T) {
	c := NewMemoryClient(10)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "response:aaa", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "response:bbb", []byte("2"), time.Minute))
	require.NoError(t, c.Set(ctx, "other:ccc", []byte("3"), time.Minute))

	require.NoError(t, c.DeleteByPrefix(ctx, "response:"))

	_, err := c.Get(ctx, "response:aaa")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "response:bbb")
	assert.ErrorIs(t, err, ErrCacheMiss)

	val, err := c.Get(ctx, "other:ccc")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)
}

func TestMemoryClientEviction(t *testing.T) {
	c := NewMemoryClient(2)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "k2", []byte("2"), time.Minute))
	require.NoError(t, c.Set(ctx, "k3", []byte("3"), time.Minute))

	// Capacity holds: at most two entries survive.
	survivors := 0
	for _, key := range []string{"k1", "k2", "k3"} {
		if _, err := c.Get(ctx, key); err == nil {
			survivors++
		}
	}
	assert.LessOrEqual(t, survivors, 2)
}

func TestMemoryClientCloseStopsCleanup(t *testing.T) {
	c := NewMemoryClient(10)

	require.NoError(t, c.Close())

	select {
	case <-c.done:
	default:
		t.Fatal("expected done channel to be closed after Close")
	}

	// Second Close must not panic on an already closed channel.
	require.NoError(t, c.Close())

	// The client stays usable for reads and writes after Close.
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)
}
