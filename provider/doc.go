// Package provider defines the generic backend abstraction and its
// middleware chain.
//
// RequestResponse[I, O] is the single interaction pattern: one input in,
// one output out. Backends implement it directly; cross-cutting behavior
// wraps it through Middleware:
//
//	wrapped := provider.Chain(
//	    provider.WithLogging[In, Out](log),
//	    provider.WithMetrics[In, Out](metrics),
//	    provider.WithTracing[In, Out]("my-service"),
//	)(backend)
//
// Middlewares preserve the backend's Name and IsAvailable behavior and
// compose in declaration order, first middleware outermost.
package provider
