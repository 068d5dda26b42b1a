// internal/session/redis_store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists sessions and cart snapshots as JSON values.
// Entries expire with the backend token so a stale session cannot
// outlive the credentials behind it.
type RedisStore struct {
	client      *redis.Client
	fallbackTTL time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, fallbackTTL time.Duration) *RedisStore {
	return &RedisStore{
		client:      client,
		fallbackTTL: fallbackTTL,
	}
}

func sessionKey(id string) string { return fmt.Sprintf("pos:session:%s", id) }
func cartKey(id string) string    { return fmt.Sprintf("pos:cart:%s", id) }

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Set(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	ttl := TokenTTL(s.Token, r.fallbackTTL)
	if err := r.client.Set(ctx, sessionKey(s.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id), cartKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (r *RedisStore) GetCart(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, cartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}
	return data, nil
}

func (r *RedisStore) SetCart(ctx context.Context, id string, snapshot []byte) error {
	// Cart lives exactly as long as its session can
	ttl, err := r.client.TTL(ctx, sessionKey(id)).Result()
	if err != nil || ttl <= 0 {
		ttl = r.fallbackTTL
	}
	if err := r.client.Set(ctx, cartKey(id), snapshot, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cart snapshot: %w", err)
	}
	return nil
}

func (r *RedisStore) ClearCart(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, cartKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart snapshot: %w", err)
	}
	return nil
}
