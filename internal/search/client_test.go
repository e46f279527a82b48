package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func okHandler(t *testing.T, refs []NodeRef, hits *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/nodes/search-across-maps", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Query)

		_ = json.NewEncoder(w).Encode(searchResponse{Data: refs})
	}
}

func TestSearchSuccess(t *testing.T) {
	want := []NodeRef{{NodeID: "n1", Content: "release plan", MapID: "m1", MapTitle: "Roadmap"}}
	srv := newServer(t, okHandler(t, want, nil))

	c := New(srv.URL, Options{})
	got, err := c.Search(context.Background(), "release")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchEmptyQuery(t *testing.T) {
	c := New("http://127.0.0.1:0", Options{})
	got, err := c.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchServerErrorDegrades(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	c := New(srv.URL, Options{})
	got, err := c.Search(context.Background(), "anything")
	require.NoError(t, err, "server errors must not surface")
	assert.Empty(t, got)
}

func TestSearchMalformedResponseDegrades(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	})

	c := New(srv.URL, Options{})
	got, err := c.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchTransportErrorDegrades(t *testing.T) {
	c := New("http://127.0.0.1:1", Options{Timeout: 200 * time.Millisecond})
	got, err := c.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchCachesByNormalizedQuery(t *testing.T) {
	var hits atomic.Int32
	want := []NodeRef{{NodeID: "n1"}}
	srv := newServer(t, okHandler(t, want, &hits))

	c := New(srv.URL, Options{})
	_, err := c.Search(context.Background(), "Release  Plan")
	require.NoError(t, err)
	_, err = c.Search(context.Background(), "  release plan ")
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load(), "second call must hit the cache")
}

func TestSearchCacheExpires(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, okHandler(t, nil, &hits))

	c := New(srv.URL, Options{CacheTTL: 20 * time.Millisecond, SweepInterval: time.Millisecond})
	_, _ = c.Search(context.Background(), "q")
	time.Sleep(40 * time.Millisecond)
	_, _ = c.Search(context.Background(), "q")

	assert.Equal(t, int32(2), hits.Load(), "expired entry must refetch")
}

func TestDebouncedSearchCoalesces(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, okHandler(t, []NodeRef{{NodeID: "last"}}, &hits))

	c := New(srv.URL, Options{Debounce: 30 * time.Millisecond})

	done := make(chan []NodeRef, 3)
	for _, q := range []string{"a", "ab", "abc"} {
		c.DebouncedSearch(q, func(refs []NodeRef) { done <- refs })
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case refs := <-done:
		require.Len(t, refs, 1)
		assert.Equal(t, "last", refs[0].NodeID)
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}

	// Only the final coalesced query reaches the network.
	assert.Equal(t, int32(1), hits.Load())
	select {
	case <-done:
		t.Fatal("superseded callbacks must not fire")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "release plan", normalizeQuery("  Release   PLAN "))
	assert.Equal(t, "", normalizeQuery("   "))
}
