package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"articlesearch/config"
	"articlesearch/types"
)

const (
	searchKeyPrefix = "search:"
	pageKeyPrefix   = "page:"

	// searchTTL bounds how stale a cached search response can get; content
	// edits also purge search entries via InvalidatePath.
	searchTTL = 5 * time.Minute
)

// Cache stores rendered search responses in Redis and supports
// webhook-driven invalidation of page paths. A nil *Cache is valid and
// disables caching, so callers never branch on configuration.
type Cache struct {
	client *redis.Client
}

// New connects to Redis from configuration. Returns nil (caching disabled)
// when no address is configured or the server is unreachable.
func New(cfg *config.Config) *Cache {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: failed to connect to Redis: %v. Response caching disabled.", err)
		return nil
	}

	return &Cache{client: client}
}

// SearchKey builds the cache key for a search request.
func SearchKey(query string, limit int) string {
	return fmt.Sprintf("%sq=%s:limit=%d", searchKeyPrefix, strings.ToLower(strings.TrimSpace(query)), limit)
}

// PageKey builds the cache key for a content path.
func PageKey(path string) string {
	return pageKeyPrefix + strings.Trim(strings.TrimSpace(path), "/")
}

// GetSearch returns the cached response for the key, or nil on miss.
func (c *Cache) GetSearch(ctx context.Context, key string) *types.SearchResponse {
	if c == nil {
		return nil
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Warning: cache read failed for %s: %v", key, err)
		}
		return nil
	}

	var resp types.SearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Printf("Warning: dropping undecodable cache entry %s: %v", key, err)
		c.client.Del(ctx, key)
		return nil
	}
	return &resp
}

// SetSearch stores a search response under the key. Failures are logged,
// never surfaced; the cache is best-effort.
func (c *Cache) SetSearch(ctx context.Context, key string, resp *types.SearchResponse) {
	if c == nil {
		return
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, b, searchTTL).Err(); err != nil {
		log.Printf("Warning: cache write failed for %s: %v", key, err)
	}
}

// InvalidatePath drops the cached entry for a content path and purges all
// cached search responses, since any content edit can change rankings.
func (c *Cache) InvalidatePath(ctx context.Context, path string) error {
	if c == nil {
		return nil
	}

	if err := c.client.Del(ctx, PageKey(path)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate %s: %w", path, err)
	}

	iter := c.client.Scan(ctx, 0, searchKeyPrefix+"*", 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan search cache: %w", err)
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to purge search cache: %w", err)
		}
	}

	log.Printf("Invalidated cache for %q (+%d search entries)", path, len(keys))
	return nil
}
