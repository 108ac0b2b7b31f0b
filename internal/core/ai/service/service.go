package service

import (
	"context"
	"fmt"
	"strings"

	"recipe-extractor/internal/core/ai/cache"
	"recipe-extractor/internal/core/ai/openrouter"
	"recipe-extractor/internal/infrastructure/config"
)

// Service AI 補全服務：OpenRouter 客戶端外面包一層快取
// 實作 extract.CompletionService
type Service struct {
	config       *config.Config
	openRouter   *openrouter.Client
	cacheManager *cache.CacheManager
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, cacheManager *cache.CacheManager) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return &Service{
		config:       cfg,
		openRouter:   openrouter.NewClient(cfg),
		cacheManager: cacheManager,
	}, nil
}

// Complete 統一對外方法：查快取、呼叫模型、回寫快取
func (s *Service) Complete(ctx context.Context, prompt string) (string, error) {
	// 統一 prompt 空白，確保快取 key 一致
	prompt = strings.TrimSpace(prompt)

	cacheKey := normalizeForCache(prompt)

	if s.config.Cache.Enabled && s.cacheManager != nil {
		if val, err := s.cacheManager.Get(ctx, cacheKey); err == nil && val != "" {
			return val, nil
		}
	}

	content, err := s.openRouter.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	if s.config.Cache.Enabled && s.cacheManager != nil {
		_ = s.cacheManager.Set(ctx, cacheKey, content)
	}

	return content, nil
}

// Close 關閉底層客戶端
func (s *Service) Close() error {
	return s.openRouter.Close()
}

// normalizeForCache 折疊所有空白，讓排版差異不會打散快取
func normalizeForCache(prompt string) string {
	return strings.Join(strings.Fields(prompt), " ")
}
