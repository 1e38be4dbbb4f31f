package pix

import (
	"context"
	"sync"
	"time"
)

// TokenCache guarda o bearer OAuth entre cobranças para não bater no
// endpoint de token a cada requisição. Falha de cache nunca é fatal:
// o cliente simplesmente busca um token novo.
type TokenCache interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, token string, ttl time.Duration)
}

type MemoryTokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{}
}

func (c *MemoryTokenCache) Get(ctx context.Context) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" || time.Now().After(c.expiresAt) {
		return "", false
	}
	return c.token, true
}

func (c *MemoryTokenCache) Set(ctx context.Context, token string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expiresAt = time.Now().Add(ttl)
}
