package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"simplexdss/internal/module/simplex/dto"
)

// ResultCache memoizes solve responses. A solve is a pure function of its
// request, so any response may be replayed for an identical payload. Cache
// failures are never fatal: misses fall through to the engine.
type ResultCache interface {
	Get(ctx context.Context, key string) (*dto.SolveResponse, bool)
	Set(ctx context.Context, key string, resp *dto.SolveResponse)
}

// requestKey derives the cache key from the canonical JSON encoding of the
// request.
func requestKey(req *dto.SimplexRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return "simplex:solve:" + hex.EncodeToString(sum[:]), nil
}

// NoopCache is used when no Redis endpoint is configured.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string) (*dto.SolveResponse, bool) { return nil, false }
func (NoopCache) Set(ctx context.Context, key string, resp *dto.SolveResponse)   {}

// RedisCache stores responses as JSON values with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCache creates a Redis-backed result cache.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*dto.SolveResponse, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Result cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var resp dto.SolveResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Warn("Result cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &resp, true
}

func (c *RedisCache) Set(ctx context.Context, key string, resp *dto.SolveResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("Result cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Result cache write failed", zap.String("key", key), zap.Error(err))
	}
}
