package cache

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

type redisStore struct {
	client *redis.Client
}

// NewRedis connects to Redis and verifies the connection with a ping, so the
// caller can fall back to the in-memory store when Redis is down.
func NewRedis(addr, password string, db int) (KVStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &redisStore{client: rdb}, nil
}

func (r *redisStore) Get(key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

func (r *redisStore) Set(key string, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *redisStore) Delete(key string) error {
	return r.client.Del(ctx, key).Err()
}
