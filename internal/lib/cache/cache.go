// Package cache keeps listing query results in Redis.
//
// Keys carry a version number. Every write bumps the version, which orphans
// all earlier keys at once; they expire through their TTL.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	keyPrefix  = "estate:listings"
	versionKey = keyPrefix + ":version"
)

// ListingCache is a JSON cache for listing reads. A nil *ListingCache is a
// valid, always-missing cache.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// New returns nil when client is nil so callers can hold the result
// unconditionally.
func New(client *redis.Client, ttl time.Duration, logger *zerolog.Logger) *ListingCache {
	if client == nil {
		return nil
	}
	return &ListingCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "listing_cache").Logger(),
	}
}

// GenerateQueryCacheKey hashes query params in sorted order so the same
// filter always maps to the same key.
func GenerateQueryCacheKey(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(":")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}

	hash := md5.Sum([]byte(b.String()))
	return prefix + ":" + hex.EncodeToString(hash[:])
}

// Key builds the versioned key for a scope ("list", "featured") and params.
func (c *ListingCache) Key(ctx context.Context, scope string, params map[string]string) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	prefix := keyPrefix + ":v" + strconv.FormatInt(version, 10) + ":" + scope
	return GenerateQueryCacheKey(prefix, params), nil
}

// Lookup resolves the key and reads it into dest. It returns the key so a
// miss can be filled without recomputing it. Redis errors count as a miss.
func (c *ListingCache) Lookup(ctx context.Context, scope string, params map[string]string, dest any) (string, bool) {
	if c == nil {
		return "", false
	}

	key, err := c.Key(ctx, scope, params)
	if err != nil {
		c.logger.Warn().Err(err).Msg("could not read cache version")
		return "", false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return key, false
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return key, false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return key, false
	}
	return key, true
}

// Store writes value under key. Empty keys (from a failed Lookup) are ignored.
func (c *ListingCache) Store(ctx context.Context, key string, value any) {
	if c == nil || key == "" {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Msg("could not encode cache entry")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Invalidate bumps the version so every existing listing key goes stale.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}
