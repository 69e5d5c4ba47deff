package bootstrap

import (
	"context"
	"time"

	"go_doc_rpc/config"
	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/platform/cache"
	"go_doc_rpc/platform/events"
	"go_doc_rpc/platform/redis"
)

type Infrastructure struct {
	Redis          *redis.Service
	Cache          *cache.L1CacheService
	EventPublisher *events.EventPublisher
}

// NewInfrastructure sets up the document cache and, when events.redis_url is set, the redis
// event channel. A redis failure only disables events.
func NewInfrastructure(ctx context.Context, cfg *config.Config) *Infrastructure {
	infra := &Infrastructure{}

	// cache
	infra.Cache = cache.InitL1Cache(cfg.Documents.CacheTTL)

	// redis events
	if cfg.Events.RedisURL == "" {
		logging.Logger.Info("document events disabled, events.redis_url not set")
		return infra
	}
	redisService, err := redis.InitRedis(ctx, cfg.Events.RedisURL, 5*time.Second)
	if err != nil {
		logging.Logger.Warn("fail Initializing Redis, document events disabled", "error", err)
		return infra
	}
	infra.Redis = redisService
	infra.EventPublisher = events.NewEventPublisher(redisService.Rdb)

	return infra
}

func (infra *Infrastructure) Shutdown() error {
	if infra.Redis != nil {
		if err := infra.Redis.Close(); err != nil {
			logging.Logger.Error("fail closing redis", "error", err)
			return err
		}
	}
	return nil
}
