package openai

import (
	"sync"

	"github.com/deepgram/neuroscan/internal/config"
	"github.com/deepgram/neuroscan/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

type Service struct {
	mu     sync.RWMutex
	client *openai.Client
}

// NewService builds an OpenAI client from the loaded configuration.
// It returns nil when no key is configured.
func NewService(cfg config.OpenAIConfig) *Service {
	logger.Info(logger.SERVICE, "Initialising OpenAI service")

	if cfg.Key == "" {
		logger.Warn(logger.SERVICE, "OpenAI service not configured - OPENAI_KEY missing")
		return nil
	}

	clientConfig := openai.DefaultConfig(cfg.Key)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Service{
		mu:     sync.RWMutex{},
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (s *Service) GetClient() *openai.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}
