// Package search is the client for the cross-map node search endpoint used
// by the reference command. It debounces rapid queries, caches successful
// results with a TTL, and degrades to zero results on any transport or
// server failure.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	searchPath      = "/api/nodes/search-across-maps"
	maxResponseSize = 1 << 20
)

// NodeRef is one node returned by the search endpoint.
type NodeRef struct {
	NodeID   string `json:"node_id"`
	Content  string `json:"node_content"`
	MapID    string `json:"map_id"`
	MapTitle string `json:"map_title"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Data []NodeRef `json:"data"`
}

// Options tune the client. Zero values fall back to the defaults below.
type Options struct {
	Debounce      time.Duration // coalescing window for DebouncedSearch
	CacheTTL      time.Duration // lifetime of a cached successful result
	SweepInterval time.Duration // minimum spacing between lazy cache sweeps
	Timeout       time.Duration // per-request HTTP timeout
}

const (
	defaultDebounce = 300 * time.Millisecond
	defaultCacheTTL = 5 * time.Minute
	defaultSweep    = time.Minute
	defaultTimeout  = 10 * time.Second
)

type cacheEntry struct {
	refs    []NodeRef
	expires time.Time
}

// Client talks to the search endpoint. The HTTP client is shared and pooled;
// constructing one Client per process is expected.
type Client struct {
	baseURL string
	http    *http.Client

	debounce time.Duration
	cacheTTL time.Duration
	sweepGap time.Duration

	mu        sync.Mutex
	cache     map[string]cacheEntry
	lastSweep time.Time
	timer     *time.Timer

	// seq tags every dispatched request; completions older than delivered
	// are dropped so out-of-order responses cannot clobber newer ones.
	seq       atomic.Int64
	delivered atomic.Int64
}

// New returns a client for the search endpoint at baseURL.
func New(baseURL string, opts Options) *Client {
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = defaultSweep
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: opts.Timeout},
		debounce: opts.Debounce,
		cacheTTL: opts.CacheTTL,
		sweepGap: opts.SweepInterval,
		cache:    map[string]cacheEntry{},
	}
}

// Search resolves a query synchronously. Transport failures, non-2xx
// statuses and malformed bodies all degrade to zero results; the editor
// never sees a search error.
func (c *Client) Search(ctx context.Context, query string) ([]NodeRef, error) {
	key := normalizeQuery(query)
	if key == "" {
		return nil, nil
	}

	if refs, ok := c.cached(key); ok {
		return refs, nil
	}

	refs, err := c.fetch(ctx, key)
	if err != nil {
		return nil, nil //nolint:nilerr // boundary degrades to zero results
	}

	c.store(key, refs)
	return refs, nil
}

// DebouncedSearch schedules a query, coalescing calls that arrive within the
// debounce window into the last one. The callback fires on a timer goroutine
// with the results; stale completions (superseded by a newer dispatch) are
// dropped.
func (c *Client) DebouncedSearch(query string, fn func([]NodeRef)) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		seq := c.seq.Add(1)
		refs, _ := c.Search(context.Background(), query)

		// Drop this completion if a newer one already fired.
		for {
			cur := c.delivered.Load()
			if seq <= cur {
				return
			}
			if c.delivered.CompareAndSwap(cur, seq) {
				break
			}
		}
		fn(refs)
	})
	c.mu.Unlock()
}

func (c *Client) fetch(ctx context.Context, query string) ([]NodeRef, error) {
	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("search: malformed response: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) cached(key string) ([]NodeRef, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Lazy sweep: evict expired entries at most once per sweep interval.
	if now.Sub(c.lastSweep) >= c.sweepGap {
		for k, e := range c.cache {
			if now.After(e.expires) {
				delete(c.cache, k)
			}
		}
		c.lastSweep = now
	}

	e, ok := c.cache[key]
	if !ok || now.After(e.expires) {
		return nil, false
	}
	return e.refs, true
}

func (c *Client) store(key string, refs []NodeRef) {
	c.mu.Lock()
	c.cache[key] = cacheEntry{refs: refs, expires: time.Now().Add(c.cacheTTL)}
	c.mu.Unlock()
}

// normalizeQuery is the cache key: trimmed, lower-cased, inner whitespace
// collapsed.
func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
