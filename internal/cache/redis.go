package cache

import (
	"context"
	"fmt"

	"lightbnb/internal/config"

	"github.com/redis/go-redis/v9"
)

// redisClient 為 Cache 加上啟動時需要的 Ping
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// redisNewClient 測試可覆寫
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient 依設定建立 redis 連線並確認可用，失敗時會關閉已建立的 client
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
