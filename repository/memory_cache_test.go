package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	require.NoError(t, c.Set(ctx, "short", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, ok = c.Get(ctx, "short")
	assert.False(t, ok)
}
