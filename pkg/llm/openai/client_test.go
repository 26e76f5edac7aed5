package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hr360/assistant/pkg/llm"
)

func TestAskSendsPromptAndReturnsReply(t *testing.T) {
	var gotReq chatCompletionsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		resp := chatCompletionsResponse{}
		resp.Choices = []chatChoice{{}}
		resp.Choices[0].Message.Content = "pong"
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model")
	out, err := c.Ask(context.Background(), llm.Prompt{
		System:      "you are a test",
		User:        "ping",
		Temperature: 0.3,
		MaxTokens:   100,
	})
	require.NoError(t, err)
	require.Equal(t, "pong", out)

	require.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	require.Equal(t, "system", gotReq.Messages[0].Role)
	require.Equal(t, "ping", gotReq.Messages[1].Content)
	require.InDelta(t, 0.3, gotReq.Temperature, 0.001)
	require.Equal(t, 100, gotReq.MaxTokens)
}

func TestAskErrorPaths(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		c := New("", "http://unused", "m")
		_, err := c.Ask(context.Background(), llm.Prompt{User: "x"})
		require.Error(t, err)
	})

	t.Run("non-2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer srv.Close()

		c := New("k", srv.URL, "m")
		_, err := c.Ask(context.Background(), llm.Prompt{User: "x"})
		require.ErrorContains(t, err, "openai http 429")
	})

	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		c := New("k", srv.URL, "m")
		_, err := c.Ask(context.Background(), llm.Prompt{User: "x"})
		require.ErrorContains(t, err, "no choices")
	})
}
