package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
)

// InterfaceCacheService defines the cache used for dashboard aggregates.
type InterfaceCacheService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
}

// RedisService handles Redis operations.
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a Redis-backed cache service, or nil when no Redis
// host is configured. Callers treat a nil cache as a miss on every key.
func NewRedisService(cfg *config.Config) InterfaceCacheService {
	addr := cfg.GetRedisAddr()
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// 1 Set stores a JSON-marshalled value with expiration.
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get loads a value by key into dest.
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete removes a key.
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}
