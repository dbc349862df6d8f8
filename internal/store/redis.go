package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the save record as a JSON blob under a fixed key.
type RedisStore struct {
	client  *redis.Client
	saveKey string
	helpKey string
}

// NewRedisStore connects a store to the given Redis address.
func NewRedisStore(addr string) *RedisStore {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return NewRedisStoreWithClient(client)
}

// NewRedisStoreWithClient wraps an existing client, mainly for tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:  client,
		saveKey: DefaultSaveKey,
		helpKey: DefaultHelpKey,
	}
}

// Ping verifies the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (SaveData, error) {
	raw, err := s.client.Get(ctx, s.saveKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return DefaultSaveData(), nil
		}
		return DefaultSaveData(), fmt.Errorf("redis get save: %w", err)
	}
	return DecodeSaveData(raw), nil
}

func (s *RedisStore) Save(ctx context.Context, data SaveData) error {
	raw, err := json.Marshal(data.Normalized())
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}
	if err := s.client.Set(ctx, s.saveKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set save: %w", err)
	}
	return nil
}

func (s *RedisStore) LoadHelpSeen(ctx context.Context) (bool, error) {
	value, err := s.client.Get(ctx, s.helpKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get help flag: %w", err)
	}
	return value == "true", nil
}

func (s *RedisStore) SaveHelpSeen(ctx context.Context, seen bool) error {
	value := "false"
	if seen {
		value = "true"
	}
	if err := s.client.Set(ctx, s.helpKey, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set help flag: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.saveKey, s.helpKey).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
