package cache

import (
	"fmt"
	"time"
)

// TypedCache wraps a CacheService with a fixed value type.
type TypedCache[T any] struct {
	cache      CacheService
	prefix     string
	expiration time.Duration
}

func NewTypedCache[T any](cache CacheService, prefix string, expiration time.Duration) *TypedCache[T] {
	return &TypedCache[T]{cache: cache, prefix: prefix, expiration: expiration}
}

func (tc *TypedCache[T]) Set(key string, value T) error {
	return tc.cache.SetCache(tc.prefix+key, value, tc.expiration)
}

// Get reports a miss when the key is absent; a present value of another type is an error.
func (tc *TypedCache[T]) Get(key string) (T, bool, error) {
	var zero T

	rawValue, exists := tc.cache.GetCache(tc.prefix + key)
	if !exists {
		return zero, false, nil
	}
	typedValue, ok := rawValue.(T)
	if !ok {
		return zero, true, fmt.Errorf("cache entry %q has type %T", key, rawValue)
	}
	return typedValue, true, nil
}

func (tc *TypedCache[T]) Delete(key string) error {
	return tc.cache.DelCache(tc.prefix + key)
}
