package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/ajax"
)

const tracerName = "github.com/kbukum/ajax/transport"

// HTTP is the default ajax.Transport backed by net/http.
type HTTP struct {
	client    *http.Client
	logger    zerolog.Logger
	userAgent string
	requestID bool
	tracing   bool
	tracer    trace.Tracer
}

// compile-time assertion
var _ ajax.Transport = (*HTTP)(nil)

// Option configures the transport.
type Option func(*HTTP)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTP) { t.client = c }
}

// WithLogger sets the logger for round-trip debug logging. The default is
// a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(t *HTTP) { t.logger = l }
}

// WithUserAgent sets the User-Agent header applied to every request.
func WithUserAgent(ua string) Option {
	return func(t *HTTP) { t.userAgent = ua }
}

// WithRequestID toggles the generated X-Request-ID header. Enabled by
// default.
func WithRequestID(enabled bool) Option {
	return func(t *HTTP) { t.requestID = enabled }
}

// WithTracing toggles the OpenTelemetry client span per round trip.
// Enabled by default; without a configured tracer provider the spans are
// no-ops.
func WithTracing(enabled bool) Option {
	return func(t *HTTP) { t.tracing = enabled }
}

// New creates a transport with the given options.
func New(opts ...Option) *HTTP {
	t := &HTTP{
		client:    &http.Client{},
		logger:    zerolog.Nop(),
		requestID: true,
		tracing:   true,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.tracer = otel.Tracer(tracerName)
	return t
}

// RoundTrip executes the descriptor and returns the decoded result. The
// descriptor's timeout, when set, bounds the whole round trip through the
// request context.
func (t *HTTP) RoundTrip(ctx context.Context, req ajax.Request) (*ajax.Result, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	ctx, span := t.startSpan(ctx, req)
	start := time.Now()
	res, err := t.do(ctx, req)
	t.finishSpan(span, res, err)

	evt := t.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Dur("duration", time.Since(start))
	if err != nil {
		evt.Err(err).Msg("request failed")
		return nil, err
	}
	evt.Int("status", res.StatusCode).Msg("request completed")
	return res, nil
}

// do builds, sends, and decodes a single request.
func (t *HTTP) do(ctx context.Context, req ajax.Request) (*ajax.Result, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, NewDecodeError(fmt.Errorf("encode body: %w", err))
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("create request: %w", err))
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if t.userAgent != "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}
	if t.requestID {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				return nil, NewTimeoutError(err)
			}
			return nil, ctxErr
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, raw); classErr != nil {
		return nil, classErr
	}

	payload, err := decodePayload(resp.Header.Get("Content-Type"), raw)
	if err != nil {
		return nil, err
	}

	return &ajax.Result{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Response:   payload,
	}, nil
}

// startSpan opens a client span for the round trip when tracing is enabled.
func (t *HTTP) startSpan(ctx context.Context, req ajax.Request) (context.Context, trace.Span) {
	if !t.tracing {
		return ctx, nil
	}
	return t.tracer.Start(ctx, "http.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL),
		))
}

// finishSpan records the outcome and ends the span.
func (t *HTTP) finishSpan(span trace.Span, res *ajax.Result, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if sc := StatusCode(err); sc > 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", sc))
		}
	} else {
		span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))
	}
	span.End()
}

// decodePayload turns the raw response body into the caller-visible payload.
// JSON bodies are decoded; anything else passes through as a string. An
// empty body yields a nil payload.
func decodePayload(contentType string, raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if strings.Contains(contentType, "application/json") {
		var payload any
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, NewDecodeError(fmt.Errorf("decode response: %w", err))
		}
		return payload, nil
	}
	return string(raw), nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
