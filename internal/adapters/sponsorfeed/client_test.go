package sponsorfeed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mainstreet/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLogos_FetchesAndCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"logos":[{"name":"Acme Motors","imageUrl":"https://cdn/acme.png"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Hour, cache.New(cache.NewMemoryStore(), testLogger), testLogger)

	logos := c.Logos(context.Background())
	require.Len(t, logos, 1)
	assert.Equal(t, "Acme Motors", logos[0].Name)

	c.Logos(context.Background())
	assert.Equal(t, 1, hits, "second read within TTL is served from cache")
}

func TestLogos_UpstreamFailureDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Hour, cache.New(cache.NewMemoryStore(), testLogger), testLogger)
	c.http.SetRetryCount(0)

	logos := c.Logos(context.Background())
	assert.Empty(t, logos, "failure yields the default empty feed, not an error")
}

func TestLogos_BadBodyNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Hour, cache.New(cache.NewMemoryStore(), testLogger), testLogger)
	c.http.SetRetryCount(0)

	assert.Empty(t, c.Logos(context.Background()))
}

func TestLogos_NoURLConfigured(t *testing.T) {
	c := New("", time.Hour, cache.New(cache.NewMemoryStore(), testLogger), testLogger)
	assert.Empty(t, c.Logos(context.Background()))
}
