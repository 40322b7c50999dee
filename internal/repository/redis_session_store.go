package repository

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

const redisSessionPrefix = "motionklub:session:"

// RedisSessionStore keeps session payloads in Redis, one hash per client.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func redisSessionKey(clientID string) string {
	return redisSessionPrefix + clientID
}

func (s *RedisSessionStore) Get(ctx context.Context, clientID, key string) ([]byte, error) {
	v, err := s.client.HGet(ctx, redisSessionKey(clientID), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, clientID, key string, payload []byte) error {
	return s.client.HSet(ctx, redisSessionKey(clientID), key, payload).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, clientID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.HDel(ctx, redisSessionKey(clientID), keys...).Err()
}
