package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/enviro_health_system/internal/service"
)

// RedisKV - реализация service.KVStore поверх Redis. Значения хранятся
// без TTL: профиль и журнал живут до явного сброса.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) service.KVStore {
	return &RedisKV{client: client}
}

// Get читает значение по ключу
func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: %s", service.ErrKeyNotFound, key)
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

// Put перезаписывает значение целиком
func (r *RedisKV) Put(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to put key %s: %w", key, err)
	}
	return nil
}

// Delete удаляет ключи, отсутствующие ключи не считаются ошибкой
func (r *RedisKV) Delete(ctx context.Context, keys ...string) error {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}
