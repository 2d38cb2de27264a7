package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/config"
	"github.com/KirkDiggler/hydroflow/internal/llm/ollama"
	"github.com/KirkDiggler/hydroflow/internal/llm/openai"
)

type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai"
	ProviderNone   Provider = "none"
)

// NewLLMClient creates a new LLM client based on the configuration
func NewLLMClient(cfg *config.Config, log *zap.Logger) (LLM, error) {
	switch Provider(cfg.LLM.Provider) {
	case ProviderOllama:
		return ollama.NewClient(&cfg.Ollama, log)
	case ProviderOpenAI:
		return openai.NewClient(&cfg.OpenAI, log)
	case ProviderNone, "":
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLM.Provider)
	}
}
