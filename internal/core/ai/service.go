package ai

import (
	"context"
	"strings"
	"sync"
	"time"

	"nutrismart/internal/infrastructure/config"
	"nutrismart/internal/pkg/common"
)

// Response is one model reply.
type Response struct {
	Content  string
	CacheHit bool
}

// Service fronts the OpenRouter client with response caching and a minimum
// interval between live calls.
type Service struct {
	config      *config.Config
	client      *Client
	cache       *Cache
	mu          sync.Mutex
	lastRequest time.Time
}

// minRequestInterval spaces out live model calls.
const minRequestInterval = 500 * time.Millisecond

// NewService creates the AI service.
func NewService(cfg *config.Config, cache *Cache) *Service {
	return &Service{
		config: cfg,
		client: NewClient(cfg),
		cache:  cache,
	}
}

// ProcessRequest resolves a prompt through the cache or a live model call.
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (*Response, error) {
	// Normalize the prompt so identical requests share a cache key.
	prompt = strings.Join(strings.Fields(strings.TrimSpace(prompt)), " ")

	if s.cache != nil {
		if content, err := s.cache.Get(ctx, prompt); err == nil && content != "" {
			common.LogCacheHit("ai", prompt)
			return &Response{Content: content, CacheHit: true}, nil
		}
		common.LogCacheMiss("ai", prompt)
	}

	s.throttle()

	start := time.Now()
	content, err := s.client.GenerateText(ctx, prompt)
	common.LogAICall(time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Best effort, a failed write only costs a future model call.
		_ = s.cache.Set(ctx, prompt, content)
	}

	return &Response{Content: content}, nil
}

func (s *Service) throttle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if wait := minRequestInterval - time.Since(s.lastRequest); wait > 0 {
		time.Sleep(wait)
	}
	s.lastRequest = time.Now()
}
