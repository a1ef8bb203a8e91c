package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOllamaServer(t *testing.T, response string) (*httptest.Server, *generateRequest) {
	t.Helper()
	var lastReq generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/generate":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&lastReq))
			json.NewEncoder(w).Encode(generateResponse{Response: response, Done: true})
		case "/api/tags":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server, &lastReq
}

func TestSummarise(t *testing.T) {
	server, lastReq := newOllamaServer(t, "  Краткое описание страницы.  ")
	svc := New(Config{BaseURL: server.URL, Model: "llama3.2"})

	summary, err := svc.Summarise(context.Background(), "длинный текст о растениях", 500)
	require.NoError(t, err)

	assert.Equal(t, "Краткое описание страницы.", summary)
	assert.Equal(t, "llama3.2", lastReq.Model)
	assert.False(t, lastReq.Stream)
	assert.Contains(t, lastReq.Prompt, "длинный текст о растениях")
	assert.Contains(t, lastReq.Prompt, "500")
	require.NotNil(t, lastReq.Options)
	assert.Equal(t, 125, lastReq.Options.NumPredict)
}

func TestSuggestQueries(t *testing.T) {
	t.Run("lines parsed and bullets stripped", func(t *testing.T) {
		server, lastReq := newOllamaServer(t, "- как ухаживать за растениями\n\n* лучшие сайты о цветах\nполив растений летом\n")
		svc := New(Config{BaseURL: server.URL})

		queries, err := svc.SuggestQueries(context.Background(), "страница о растениях")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"как ухаживать за растениями",
			"лучшие сайты о цветах",
			"полив растений летом",
		}, queries)
		assert.Contains(t, lastReq.Prompt, "страница о растениях")
	})

	t.Run("blank response yields no queries", func(t *testing.T) {
		server, _ := newOllamaServer(t, "\n  \n")
		svc := New(Config{BaseURL: server.URL})

		queries, err := svc.SuggestQueries(context.Background(), "тема")
		require.NoError(t, err)
		assert.Empty(t, queries)
	})
}

func TestLLMErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := New(Config{BaseURL: server.URL})

	_, err := svc.Summarise(context.Background(), "текст", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")

	_, err = svc.SuggestQueries(context.Background(), "текст")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")

	assert.Error(t, svc.Ping(context.Background()))
}

func TestLLMDefaults(t *testing.T) {
	svc := New(Config{})
	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.NoError(t, svc.Close())
}

func TestPingOK(t *testing.T) {
	server, _ := newOllamaServer(t, "")
	svc := New(Config{BaseURL: server.URL})
	assert.NoError(t, svc.Ping(context.Background()))
}
