package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, req chatRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		handler(w, req)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeChoices(w http.ResponseWriter, contents ...string) {
	choices := make([]map[string]interface{}, 0, len(contents))
	for i, c := range contents {
		choices = append(choices, map[string]interface{}{
			"index":         i,
			"finish_reason": "stop",
			"message":       map[string]string{"role": "assistant", "content": c},
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   "gpt-4",
		"choices": choices,
		"usage":   map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	})
}

func TestClient_Complete(t *testing.T) {
	var got chatRequest
	srv := newTestServer(t, func(w http.ResponseWriter, req chatRequest) {
		got = req
		writeChoices(w, `{"marketAnalysis":{}}`)
	})

	client := NewClient(Options{
		APIKey:      "sk-test",
		Model:       "gpt-4",
		Temperature: 0.7,
		BaseURL:     srv.URL + "/v1",
	}, logrus.New())

	text, err := client.Complete(context.Background(), "analyze this")
	require.NoError(t, err)

	assert.Equal(t, `{"marketAnalysis":{}}`, text)
	assert.Equal(t, "gpt-4", got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 1e-6)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "analyze this", got.Messages[0].Content)
}

func TestClient_Complete_NoChoices(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, req chatRequest) {
		writeChoices(w)
	})
	client := NewClient(Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, nil)

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestClient_Complete_UpstreamError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, req chatRequest) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
	})
	client := NewClient(Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, nil)

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion failed")
}

func TestClient_Complete_ContextDeadline(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, req chatRequest) {
		time.Sleep(200 * time.Millisecond)
		writeChoices(w, "late")
	})
	client := NewClient(Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, "prompt")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClient_DefaultModel(t *testing.T) {
	client := NewClient(Options{APIKey: "sk-test"}, nil)
	assert.Equal(t, "gpt-4", client.model)
}
