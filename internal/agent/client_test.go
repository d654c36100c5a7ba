package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Run(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Mostly coding."}}]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "secret", "gpt-4o-mini", nil)
	answer, err := client.Run(context.Background(), "summarize this")
	require.NoError(t, err)
	require.Equal(t, "Mostly coding.", answer)

	require.Equal(t, "/chat/completions", gotPath)
	require.Equal(t, "Bearer secret", gotAuth)
	require.Equal(t, "gpt-4o-mini", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	require.Equal(t, "user", gotBody.Messages[0].Role)
	require.Equal(t, "summarize this", gotBody.Messages[0].Content)
}

func TestClient_RunEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "secret", "gpt-4o-mini", nil)
	_, err := client.Run(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestClient_RunAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "secret", "gpt-4o-mini", nil)
	_, err := client.Run(context.Background(), "prompt")
	require.ErrorContains(t, err, "status 429")
}
