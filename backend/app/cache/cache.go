package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"ieltsim/backend/global"
)

const (
	KeyLeaderboard = "ieltsim:leaderboard"
	KeyStats       = "ieltsim:stats"
)

// Cache is a thin JSON cache over redis. A nil *Cache (redis not configured)
// is valid and behaves as a permanent miss, so callers never branch on it.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetJSON reports whether key was present and decoded into dest. Redis
// errors count as a miss; the caller falls through to the database.
func (c *Cache) GetJSON(key string, dest any) bool {
	if c == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			global.Logger.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		global.Logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *Cache) Invalidate(keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		global.Logger.Warn().Err(err).Msg("cache invalidate failed")
	}
}
