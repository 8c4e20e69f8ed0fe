package ajax

import (
	"context"
	"time"
)

// Request is the immutable, fully-resolved descriptor handed to the
// transport. It is built fresh per call and never mutated afterwards.
type Request struct {
	// Method is the HTTP method (GET or POST).
	Method string
	// URL is the final request URL: base URL + path + optional query string.
	URL string
	// Headers is the snapshot of the client's default headers taken at
	// build time, plus Content-Type when a body is present.
	Headers map[string]string
	// Body is the request body, verbatim as supplied by the caller.
	// Nil means no body; the transport encodes everything else.
	Body any
	// Timeout mirrors the owning client's configured timeout. Zero means
	// the transport default applies.
	Timeout time.Duration
}

// Result is the transport's success envelope. Only Response is surfaced to
// callers; the rest is available to transport-aware code.
type Result struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Response is the decoded response payload.
	Response any
}

// Transport performs the actual network call for a fully-built descriptor.
// It returns either a Result or an error; the client forwards errors to the
// caller untouched, without classification or recovery.
type Transport interface {
	RoundTrip(ctx context.Context, req Request) (*Result, error)
}
