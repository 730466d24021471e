package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker 记录已登出的令牌，直到令牌自然过期
type Revoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	Revoked(ctx context.Context, jti string) (bool, error)
}

// NopRevoker 未配置 Redis 时使用：登出只清 cookie
type NopRevoker struct{}

func (NopRevoker) Revoke(context.Context, string, time.Time) error { return nil }
func (NopRevoker) Revoked(context.Context, string) (bool, error)   { return false, nil }

// kv 为 *redis.Client 中用到的部分，测试可替换
type kv interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Close() error
}

type RedisRevoker struct {
	RDB    kv
	Prefix string
}

func NewRedisRevoker(addr, pass string, db int) *RedisRevoker {
	return &RedisRevoker{
		RDB:    redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		Prefix: "session:revoked:",
	}
}

func (r *RedisRevoker) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	// 已过期的令牌本就无法通过校验
	if ttl <= 0 {
		return nil
	}
	return r.RDB.Set(ctx, r.Prefix+jti, 1, ttl).Err()
}

func (r *RedisRevoker) Revoked(ctx context.Context, jti string) (bool, error) {
	err := r.RDB.Get(ctx, r.Prefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisRevoker) Close() error { return r.RDB.Close() }
