package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the blob substrate with Redis. Selected when REDIS_URL or
// REDIS_ADDR is configured.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(redisURL, addr, password string) (*RedisStore, error) {
	var opt *redis.Options
	if redisURL != "" {
		parsed, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, err
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(key string) (string, error) {
	val, err := s.client.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	return val, err
}

func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(context.Background(), key, value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
