package services

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/repositories"
)

type genAIClientPool struct {
	config *repositories.AIClientConfig
	client *genai.Client
	mutex  sync.RWMutex
}

func NewGenAIClientPool(apiKey string) repositories.GenAIClientPool {
	return &genAIClientPool{
		config: &repositories.AIClientConfig{APIKey: apiKey},
	}
}

func (p *genAIClientPool) GetGenAIClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.RLock()
	if p.client != nil {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// double-checked
	if p.client != nil {
		return p.client, nil
	}

	if p.config.APIKey == "" {
		return nil, fmt.Errorf("failed to create GenAI client: api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	p.client = client
	return p.client, nil
}

func (p *genAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// genai.Client holds no resources to release
	p.client = nil
	return nil
}
