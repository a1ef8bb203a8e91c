package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("page reduced to text", func(t *testing.T) {
		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Write([]byte(`<html><head><title>Сад и огород</title></head><body><p>Советы по растениям.</p></body></html>`))
		}))
		defer server.Close()

		fetcher := New(Config{})
		defer fetcher.Close()

		page, err := fetcher.Fetch(ctx, server.URL)
		require.NoError(t, err)

		assert.Equal(t, server.URL, page.URL)
		assert.Equal(t, "Сад и огород", page.Title)
		assert.Equal(t, "Советы по растениям.", page.Text)
		assert.False(t, page.FetchedAt.IsZero())
		assert.Equal(t, defaultUserAgent, gotUA)
	})

	t.Run("custom user agent", func(t *testing.T) {
		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Write([]byte("<p>ok</p>"))
		}))
		defer server.Close()

		fetcher := New(Config{UserAgent: "citelens-test/1.0"})
		_, err := fetcher.Fetch(ctx, server.URL)
		require.NoError(t, err)
		assert.Equal(t, "citelens-test/1.0", gotUA)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := New(Config{})
		_, err := fetcher.Fetch(ctx, server.URL)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("too many requests", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		fetcher := New(Config{})
		_, err := fetcher.Fetch(ctx, server.URL)
		assert.ErrorIs(t, err, domain.ErrRateLimited)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		fetcher := New(Config{})
		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		fetcher := New(Config{})
		_, err := fetcher.Fetch(cancelled, "http://example.invalid")
		assert.Error(t, err)
	})

	t.Run("burst of fetches within limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("<p>ok</p>"))
		}))
		defer server.Close()

		fetcher := New(Config{RequestsPerSecond: 100, Burst: 3})
		for i := 0; i < 3; i++ {
			_, err := fetcher.Fetch(ctx, server.URL)
			require.NoError(t, err)
		}
	})
}
