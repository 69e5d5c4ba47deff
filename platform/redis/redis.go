package redis

import (
	"context"
	"fmt"
	"time"

	"go_doc_rpc/pkg/logging"

	"github.com/redis/go-redis/v9"
)

type Service struct {
	Rdb *redis.Client
}

// InitRedis parses a redis:// URL and pings the server before returning.
func InitRedis(ctx context.Context, redisURL string, timeout time.Duration) (*Service, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("empty redis url")
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse Redis URL: %w", err)
	}
	return connect(ctx, opt, timeout)
}

// InitRedisAddr connects with discrete address and credentials.
func InitRedisAddr(ctx context.Context, addr, username, password string, timeout time.Duration) (*Service, error) {
	return connect(ctx, &redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	}, timeout)
}

func connect(ctx context.Context, opt *redis.Options, timeout time.Duration) (*Service, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	opt.DialTimeout = timeout
	rdb := redis.NewClient(opt)

	testCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := rdb.Ping(testCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	logging.Logger.Info("connected to redis", "addr", opt.Addr)
	return &Service{Rdb: rdb}, nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.Rdb.Ping(ctx).Err()
}

func (s *Service) Close() error {
	return s.Rdb.Close()
}
