package repositories

import (
	"context"

	"google.golang.org/genai"
)

type AIClientConfig struct {
	APIKey string
}

// GenAIClientPool lazily creates and shares a single Gemini API client.
type GenAIClientPool interface {
	GetGenAIClient(ctx context.Context) (*genai.Client, error)

	Close() error
}
