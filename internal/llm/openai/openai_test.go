package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/hydroflow/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.OpenAIConfig{
		APIKey:    "test-key",
		Model:     "gpt-test",
		BaseURL:   server.URL + "/",
		MaxTokens: 100,
		Timeout:   5,
	}, nil)
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(&config.OpenAIConfig{}, nil)
	assert.Error(t, err)
}

func TestGenerateResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-test", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "drink?", req.Messages[0].Content)

		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"Drink up."}}]}`))
	})

	reply, err := client.GenerateResponse(context.Background(), "drink?")
	require.NoError(t, err)
	assert.Equal(t, "Drink up.", reply)
}

func TestGenerateResponseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "error status", status: http.StatusTooManyRequests, payload: `{}`},
		{name: "api error body", status: http.StatusOK, payload: `{"error":{"message":"bad"}}`},
		{name: "no choices", status: http.StatusOK, payload: `{"choices":[]}`},
		{name: "malformed", status: http.StatusOK, payload: `not json`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.payload))
			})

			_, err := client.GenerateResponse(context.Background(), "hi")
			assert.Error(t, err)
		})
	}
}

func TestIsModelAvailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":"other"},{"id":"gpt-test"}]}`))
	})
	assert.NoError(t, client.IsModelAvailable(context.Background()))

	missing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"other"}]}`))
	})
	assert.Error(t, missing.IsModelAvailable(context.Background()))
}
