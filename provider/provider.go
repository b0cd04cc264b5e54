package provider

import "context"

// Provider is the base interface all backends implement.
type Provider interface {
	// Name returns the backend's unique name.
	Name() string
	// IsAvailable checks if the backend is ready to handle requests.
	IsAvailable(ctx context.Context) bool
}

// RequestResponse represents a backend that takes one input and returns
// one output. This covers HTTP calls, subprocess exec, and SQL queries.
type RequestResponse[I, O any] interface {
	Provider
	Execute(ctx context.Context, input I) (O, error)
}
