// Copyright (c) 2026 Tutoria. All rights reserved.

package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tutoria-app/tutoria/internal/platform/constants"
)

// RedisLexiconCache implements LexiconCache on Redis.
//
// Each language's lexicon is one JSON blob under a single key, so a cache
// hit is a single round trip.
type RedisLexiconCache struct {
	client *redis.Client
}

func NewRedisLexiconCache(client *redis.Client) *RedisLexiconCache {
	return &RedisLexiconCache{client: client}
}

func lexiconKey(langCode int) string {
	return constants.RedisPrefixLexicon + strconv.Itoa(langCode)
}

// Get returns the cached lexicon for a language, or nil on a miss.
func (cache *RedisLexiconCache) Get(context context.Context, langCode int) (Lexicon, error) {
	payload, err := cache.client.Get(context, lexiconKey(langCode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_lexicon_get_failed: %w", err)
	}

	var lexicon Lexicon
	if err := json.Unmarshal(payload, &lexicon); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, nil
	}
	return lexicon, nil
}

func (cache *RedisLexiconCache) Set(context context.Context, langCode int, lexicon Lexicon, ttl time.Duration) error {
	payload, err := json.Marshal(lexicon)
	if err != nil {
		return fmt.Errorf("redis_lexicon_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, lexiconKey(langCode), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_lexicon_set_failed: %w", err)
	}
	return nil
}

func (cache *RedisLexiconCache) Invalidate(context context.Context, langCode int) error {
	if err := cache.client.Del(context, lexiconKey(langCode)).Err(); err != nil {
		return fmt.Errorf("redis_lexicon_invalidate_failed: %w", err)
	}
	return nil
}
