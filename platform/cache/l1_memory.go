package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// L1CacheService is an in-process cache. It implements CacheService.
type L1CacheService struct {
	client *cache.Cache
}

func InitL1Cache(defaultExpiration time.Duration) *L1CacheService {
	if defaultExpiration <= 0 {
		defaultExpiration = 5 * time.Minute
	}
	return &L1CacheService{
		client: cache.New(defaultExpiration, 2*defaultExpiration),
	}
}

func (s *L1CacheService) GetCache(key string) (interface{}, bool) {
	return s.client.Get(key)
}

func (s *L1CacheService) SetCache(key string, value interface{}, expiration time.Duration) error {
	s.client.Set(key, value, expiration)
	return nil
}

func (s *L1CacheService) DelCache(key string) error {
	s.client.Delete(key)
	return nil
}

func (s *L1CacheService) Len() int {
	return s.client.ItemCount()
}
