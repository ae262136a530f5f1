package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Blocklist key prefix for revoked JWT token IDs
const blocklistPrefix = "auth:blocklist:"

// GetCache retrieves a value from Redis and unmarshals it into dest.
// A nil client means caching is disabled and reports a miss.
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil // Caching disabled
	}
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	if rdb == nil {
		return nil // Caching disabled
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	if rdb == nil {
		return nil // Caching disabled
	}
	return rdb.Del(ctx, key).Err() // Delete key from Redis
}

// BlockToken marks a JWT token ID as revoked until the token's natural expiry
func BlockToken(ctx context.Context, rdb *redis.Client, tokenID string, ttl time.Duration) error {
	if rdb == nil {
		return nil // Revocation list disabled
	}
	if ttl <= 0 {
		return nil // Token already expired, nothing to block
	}
	return rdb.Set(ctx, blocklistPrefix+tokenID, "1", ttl).Err() // Store the revoked token ID with TTL
}

// TokenBlocked reports whether a JWT token ID has been revoked
func TokenBlocked(ctx context.Context, rdb *redis.Client, tokenID string) bool {
	if rdb == nil {
		return false // Revocation list disabled
	}
	_, err := rdb.Get(ctx, blocklistPrefix+tokenID).Result() // Look up the token ID
	return err == nil                                        // Present means revoked
}
