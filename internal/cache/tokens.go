package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "lightbnb:revoked:"

// RevokedTokenKey 回傳已登出 token 在 redis 中的 key
func RevokedTokenKey(jti string) string {
	return revokedKeyPrefix + jti
}

// RevokeToken 將 jti 記錄為已登出，保留到 token 原本的過期時間
// 已過期的 token 不需記錄
func RevokeToken(ctx context.Context, c Cache, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.Set(ctx, RevokedTokenKey(jti), "1", ttl).Err()
}

// IsTokenRevoked 檢查 jti 是否已登出，key 不存在 (redis.Nil) 視為未登出
func IsTokenRevoked(ctx context.Context, c Cache, jti string) (bool, error) {
	err := c.Get(ctx, RevokedTokenKey(jti)).Err()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}
