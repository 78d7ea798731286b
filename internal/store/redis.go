package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

const keyPrefix = "fincalc:inputs:"

// RedisStore keeps saved inputs in Redis; keys expire with the freshness window.
type RedisStore struct {
	client    *redis.Client
	freshness time.Duration
}

// OpenRedis connects to addr and checks the connection.
func OpenRedis(ctx context.Context, addr string, freshness time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return NewRedisStore(client, freshness), nil
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client, freshness time.Duration) *RedisStore {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return &RedisStore{client: client, freshness: freshness}
}

func redisKey(kind domain.Kind) string {
	return keyPrefix + string(kind)
}

func (r *RedisStore) Save(ctx context.Context, kind domain.Kind, params any) error {
	data, _, err := encodeRecord(params)
	if err != nil {
		return err
	}
	// the key outlives the window by a second so an entry exactly at the
	// boundary is still decided by its saved_at
	if err := r.client.Set(ctx, redisKey(kind), data, r.freshness+time.Second).Err(); err != nil {
		return fmt.Errorf("save %s inputs: %w", kind, err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, kind domain.Kind, into any) error {
	data, err := r.client.Get(ctx, redisKey(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s inputs: %w", kind, err)
	}
	return decodeRecord(data, r.freshness, into)
}

func (r *RedisStore) Delete(ctx context.Context, kind domain.Kind) error {
	if err := r.client.Del(ctx, redisKey(kind)).Err(); err != nil {
		return fmt.Errorf("delete %s inputs: %w", kind, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
