package cache

import (
	"context"
	"fmt"

	"recipe-extractor/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// Service redis 後端的緩存服務
// 只在 cache.redis_enabled 時建立，否則緩存走記憶體
type Service struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewService 創建 redis 緩存服務並驗證連線
func NewService(cfg *config.CacheConfig) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Service{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存值
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("cache miss")
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	return val, nil
}

// Set 設置緩存值，帶 TTL
func (s *Service) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉 redis 連線
func (s *Service) Close() error {
	return s.client.Close()
}
