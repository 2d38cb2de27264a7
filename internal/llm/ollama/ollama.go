package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/config"
)

type Client struct {
	client *api.Client
	config *config.OllamaConfig
	log    *zap.Logger
}

// NewClient creates a client for the configured host. An empty host falls back to OLLAMA_HOST
func NewClient(cfg *config.OllamaConfig, log *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("ollama config is required")
	}

	if log == nil {
		log = zap.NewNop()
	}

	var client *api.Client
	if cfg.Host == "" {
		var err error
		client, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
	} else {
		base, err := url.Parse(cfg.Host)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama host %q: %w", cfg.Host, err)
		}
		client = api.NewClient(base, http.DefaultClient)
	}

	return &Client{
		client: client,
		config: cfg,
		log:    log,
	}, nil
}

func (c *Client) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	shouldStream := false

	req := &api.GenerateRequest{
		Model:  c.config.Model,
		Prompt: prompt,
		Stream: &shouldStream,
		Options: map[string]interface{}{
			"temperature": 0.7,
			"top_p":       0.9,
		},
	}

	timeout := time.Duration(c.config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c.log.Debug("generating response", zap.String("model", c.config.Model))

	var response string
	f := func(g api.GenerateResponse) error {
		response += g.Response
		return nil
	}

	if err := c.client.Generate(timeoutCtx, req, f); err != nil {
		c.log.Error("failed to generate response", zap.Error(err))
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}

	return response, nil
}

func (c *Client) IsModelAvailable(ctx context.Context) error {
	models, err := c.client.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	for _, model := range models.Models {
		if model.Name == c.config.Model || model.Model == c.config.Model {
			return nil
		}
	}

	return fmt.Errorf("model %s not found. Available models: %v", c.config.Model, getModelNames(models.Models))
}

func getModelNames(models []api.ListModelResponse) []string {
	names := make([]string, len(models))
	for i, model := range models {
		names[i] = model.Name
	}
	return names
}
