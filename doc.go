// Package ajax is a small HTTP request helper in front of a pluggable
// transport. A Client composes a base URL with relative paths, serializes
// query parameters and JSON bodies, merges default headers, forwards the
// per-instance timeout, and exposes every call as a single-value future that
// either resolves with the unwrapped response payload or rejects with the
// transport's error unchanged.
//
// # Basic Usage
//
//	client, err := ajax.New(ajax.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 5 * time.Second,
//	}, transport.New())
//
//	f := client.Get(ctx, "/users", query.N().Add("page", 2))
//	payload, err := f.Await(ctx)
//
// The client adds no retry, caching, or recovery logic: transport failures
// reach the caller verbatim, and only the success path is transformed (the
// transport's response envelope is unwrapped to its payload).
package ajax
