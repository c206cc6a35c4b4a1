package cache

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maison/backend/internal/domain"
)

func newTestMemoryCache(t *testing.T) *MemoryCache {
	c := NewMemoryCache()
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	prefs := domain.UserPreferences{
		FavoriteStyle:    domain.StyleMinimalist,
		ColorPalette:     domain.PaletteNeutrals,
		HasCompletedQuiz: true,
	}
	require.NoError(t, cache.Set(ctx, "preferences:1", prefs, time.Minute))

	data, err := cache.Get(ctx, "preferences:1")
	require.NoError(t, err)

	var got domain.UserPreferences
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, prefs.FavoriteStyle, got.FavoriteStyle)
	assert.Equal(t, prefs.ColorPalette, got.ColorPalette)
	assert.True(t, got.HasCompletedQuiz)
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "value", time.Minute))

	first, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	first[1] = 'X'

	second, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"value"`, string(second))
}

func TestMemoryCache_SetRejectsUnencodableValue(t *testing.T) {
	cache := newTestMemoryCache(t)

	err := cache.Set(context.Background(), "bad", make(chan int), time.Minute)
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Size())
}

func TestMemoryCache_Get_CacheMiss(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	_, err := cache.Get(ctx, "non-existent-key")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "expired", "v", time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	_, err = cache.Get(ctx, "expired")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "delete-test", "value", time.Minute))
	_, err := cache.Get(ctx, "delete-test")
	require.NoError(t, err)

	require.NoError(t, cache.Delete(ctx, "delete-test"))

	_, err = cache.Get(ctx, "delete-test")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	// deleting a missing key is not an error
	assert.NoError(t, cache.Delete(ctx, "delete-test"))
}

func TestMemoryCache_RemoveExpired(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "keep", 1, time.Hour))
	require.NoError(t, cache.Set(ctx, "drop", 2, time.Minute))

	cache.removeExpired(time.Now().Add(2 * time.Minute))

	assert.Equal(t, 1, cache.Size())
	_, err := cache.Get(ctx, "keep")
	assert.NoError(t, err)
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	assert.Equal(t, 0, cache.Size())
	for i := 0; i < 5; i++ {
		require.NoError(t, cache.Set(ctx, string(rune('a'+i)), i, time.Minute))
	}
	assert.Equal(t, 5, cache.Size())

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.Equal(t, 4, cache.Size())

	cache.Clear()
	assert.Equal(t, 0, cache.Size())
	_, err := cache.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_CloseIsIdempotent(t *testing.T) {
	cache := NewMemoryCache()
	assert.NoError(t, cache.Close())
	assert.NoError(t, cache.Close())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := string(rune('a' + id))
			assert.NoError(t, cache.Set(ctx, key, id, time.Minute))
			_, err := cache.Get(ctx, key)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, cache.Size())
}
