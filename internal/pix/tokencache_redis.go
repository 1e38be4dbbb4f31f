package pix

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisTokenKey = "pix:inter:access_token"

// RedisTokenCache compartilha o token entre instâncias da API.
type RedisTokenCache struct {
	client *redis.Client
}

func NewRedisTokenCache(redisURL string) (*RedisTokenCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisTokenCache{client: redis.NewClient(opts)}, nil
}

func (c *RedisTokenCache) Get(ctx context.Context) (string, bool) {
	token, err := c.client.Get(ctx, redisTokenKey).Result()
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (c *RedisTokenCache) Set(ctx context.Context, token string, ttl time.Duration) {
	// Best effort: se o Redis estiver fora, a próxima cobrança só paga
	// o custo de um token novo.
	_ = c.client.Set(ctx, redisTokenKey, token, ttl).Err()
}
