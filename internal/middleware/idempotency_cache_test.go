package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyCache_SetGet(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)

	resp := &cachedResponse{
		StatusCode: 201,
		Body:       []byte(`{"sale":"1"}`),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
	cache.Set("key-1", resp)

	got, ok := cache.Get("key-1")
	assert.True(t, ok)
	assert.Equal(t, 201, got.StatusCode)
	assert.Equal(t, []byte(`{"sale":"1"}`), got.Body)
}

func TestIdempotencyCache_MissingKey(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)

	got, ok := cache.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestIdempotencyCache_Expiration(t *testing.T) {
	cache := newIdempotencyCache(20 * time.Millisecond)

	cache.Set("key-1", &cachedResponse{StatusCode: 200})
	_, ok := cache.Get("key-1")
	assert.True(t, ok)

	time.Sleep(30 * time.Millisecond)

	_, ok = cache.Get("key-1")
	assert.False(t, ok)
}

func TestIdempotencyCache_Cleanup(t *testing.T) {
	cache := newIdempotencyCache(10 * time.Millisecond)

	cache.Set("key-1", &cachedResponse{StatusCode: 200})
	cache.Set("key-2", &cachedResponse{StatusCode: 201})

	time.Sleep(20 * time.Millisecond)
	cache.cleanup()

	cache.mu.RLock()
	defer cache.mu.RUnlock()
	assert.Empty(t, cache.items)
}
