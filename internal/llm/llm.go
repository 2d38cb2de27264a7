package llm

//go:generate mockgen -package=mocks -destination=mocks/mock_llm.go github.com/KirkDiggler/hydroflow/internal/llm LLM

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the disabled provider for every call
var ErrDisabled = errors.New("llm provider disabled")

// LLM defines the interface for language model providers
type LLM interface {

	// GenerateResponse generates a response from the LLM given a prompt
	GenerateResponse(ctx context.Context, prompt string) (string, error)

	// IsModelAvailable checks if the configured model is available
	IsModelAvailable(ctx context.Context) error
}

// Disabled is the provider used when no model is configured. Callers fall back to canned text
type Disabled struct{}

func (Disabled) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) IsModelAvailable(ctx context.Context) error {
	return ErrDisabled
}
