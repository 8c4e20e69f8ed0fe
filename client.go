package ajax

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/kbukum/ajax/future"
	"github.com/kbukum/ajax/query"
)

// Client issues GET and POST requests against a base URL through a
// Transport. BaseURL and Timeout are fixed for the client's lifetime; the
// default header set may be replaced wholesale via SetHeaders.
type Client struct {
	config    Config
	transport Transport

	mu      sync.RWMutex
	headers map[string]string
}

// New creates a client from the given configuration and transport.
func New(cfg Config, t Transport) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("ajax: transport is required")
	}
	return &Client{
		config:    cfg,
		transport: t,
		headers:   cloneHeaders(cfg.Headers),
	}, nil
}

// SetHeaders replaces the client's default header set wholesale. Prior
// header state has no residual effect. Requests already in flight keep the
// snapshot taken when their descriptor was built.
func (c *Client) SetHeaders(headers map[string]string) {
	replacement := cloneHeaders(headers)
	c.mu.Lock()
	c.headers = replacement
	c.mu.Unlock()
}

// Get issues a GET request for path with optional query parameters and
// returns a future for the unwrapped response payload. Params may be nil;
// a bag that serializes to nothing leaves the URL without a "?". GET
// requests never carry a body or an injected Content-Type.
func (c *Client) Get(ctx context.Context, path string, params *query.Params) *future.Future[any] {
	url := c.config.BaseURL + path
	if qs := params.Encode(); qs != "" {
		url += "?" + qs
	}
	return c.dispatch(ctx, c.buildRequest(http.MethodGet, url, nil))
}

// Post issues a POST request for path with the given body and returns a
// future for the unwrapped response payload. The body is handed to the
// transport verbatim; Content-Type: application/json is injected only when
// a body is present. POST never appends a query string.
func (c *Client) Post(ctx context.Context, path string, body any) *future.Future[any] {
	return c.dispatch(ctx, c.buildRequest(http.MethodPost, c.config.BaseURL+path, body))
}

// buildRequest assembles an immutable descriptor from the client state and
// call arguments. The header snapshot is taken here, so a later SetHeaders
// cannot affect a request already built.
func (c *Client) buildRequest(method, url string, body any) Request {
	c.mu.RLock()
	headers := cloneHeaders(c.headers)
	c.mu.RUnlock()

	if body != nil {
		headers["Content-Type"] = "application/json"
	}

	return Request{
		Method:  method,
		URL:     url,
		Headers: headers,
		Body:    body,
		Timeout: c.config.Timeout,
	}
}

// dispatch hands the descriptor to the transport and adapts the outcome:
// success resolves with the envelope's payload, failure rejects with the
// transport's error unchanged.
func (c *Client) dispatch(ctx context.Context, req Request) *future.Future[any] {
	return future.Run(ctx, func(ctx context.Context) (any, error) {
		res, err := c.transport.RoundTrip(ctx, req)
		if err != nil {
			return nil, err
		}
		return res.Response, nil
	})
}

// cloneHeaders copies a header map, mapping nil to an empty map.
func cloneHeaders(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
