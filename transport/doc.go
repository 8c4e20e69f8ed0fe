// Package transport provides the default net/http implementation of
// ajax.Transport.
//
// It JSON-encodes request bodies, decodes JSON responses, applies the
// descriptor timeout through the request context, and classifies failures
// into structured errors (timeout, connection, status, decode). Each round
// trip is logged at debug level, tagged with a generated X-Request-ID, and
// wrapped in an OpenTelemetry client span.
//
//	t := transport.New(
//	    transport.WithLogger(log),
//	    transport.WithUserAgent("myapp/1.0"),
//	)
//	client, err := ajax.New(cfg, t)
package transport
