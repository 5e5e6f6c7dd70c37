// Package queryclient is the data layer the dashboard UI fetches through. It
// caches reads keyed by resource path plus filter parameters, coalesces
// concurrent requests for the same key into one HTTP call, and drops cached
// entries for a resource path once a mutation against it succeeds.
package queryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// Status is the observable state of a read. The UI renders from these
// instead of catching errors out of the render path.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is one observation of a read.
type Result struct {
	Status Status
	Data   json.RawMessage
	Err    error
}

// call is one in-flight fetch shared by every concurrent reader of a key.
type call struct {
	done chan struct{}
	data json.RawMessage
	err  error
}

type Client struct {
	baseURL string
	httpc   *http.Client

	mu       sync.Mutex
	cache    map[string]json.RawMessage
	inflight map[string]*call
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    http.DefaultClient,
		cache:    make(map[string]json.RawMessage),
		inflight: make(map[string]*call),
	}
}

// cacheKey builds the composite key. url.Values.Encode sorts parameter names,
// so equal filters always map to the same key.
func cacheKey(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

// Get returns the value for path+params, serving from cache when possible.
// Concurrent calls for the same key share a single HTTP request.
func (c *Client) Get(ctx context.Context, path string, params url.Values) Result {
	key := cacheKey(path, params)

	c.mu.Lock()
	if data, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return Result{Status: StatusSuccess, Data: data}
	}
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		return c.await(ctx, cl)
	}
	cl := &call{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	cl.data, cl.err = c.doGet(ctx, key)

	c.mu.Lock()
	delete(c.inflight, key)
	if cl.err == nil {
		c.cache[key] = cl.data
	}
	c.mu.Unlock()
	close(cl.done)

	return resultOf(cl)
}

// Fetch is the asynchronous form of Get: the channel observes an immediate
// loading state followed by the terminal result.
func (c *Client) Fetch(ctx context.Context, path string, params url.Values) <-chan Result {
	results := make(chan Result, 2)
	results <- Result{Status: StatusLoading}

	go func() {
		defer close(results)
		results <- c.Get(ctx, path, params)
	}()

	return results
}

// Post sends a JSON mutation. On success the cache entries for path are
// invalidated before Post returns, so a subsequent read observes the write.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode body for POST %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create POST %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to POST %s%s: %w", c.baseURL, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from POST %s%s: %w", c.baseURL, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("failed to POST %s%s: status_code=%d body=%s", c.baseURL, path, resp.StatusCode, respBody)
	}

	c.Invalidate(path)
	return respBody, nil
}

// Invalidate drops every cache entry for the resource path, with or without
// filter parameters.
func (c *Client) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.cache {
		if key == path || strings.HasPrefix(key, path+"?") {
			delete(c.cache, key)
		}
	}
}

func (c *Client) await(ctx context.Context, cl *call) Result {
	select {
	case <-ctx.Done():
		return Result{Status: StatusError, Err: ctx.Err()}
	case <-cl.done:
		return resultOf(cl)
	}
}

func resultOf(cl *call) Result {
	if cl.err != nil {
		return Result{Status: StatusError, Err: cl.err}
	}
	return Result{Status: StatusSuccess, Data: cl.data}
}

func (c *Client) doGet(ctx context.Context, key string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET %s: %w", key, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to GET %s%s: %w", c.baseURL, key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to GET %s%s: status_code=%d", c.baseURL, key, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from GET %s%s: %w", c.baseURL, key, err)
	}
	return body, nil
}
