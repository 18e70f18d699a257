package llm

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// Client is an interface for talking to the inference server.
// This allows mocking in tests without a running Ollama instance.
type Client interface {
	// Generate sends one prompt and blocks until the full answer is
	// available or the configured timeout elapses. No retries.
	Generate(ctx context.Context, request GenerateRequest) (*GenerateResult, error)
	// ListModels returns the models currently installed upstream.
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
